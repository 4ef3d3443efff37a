package config

import (
	"strings"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		RedirectPath string `default:"/" env:"APP_REDIRECT_PATH"` // where the submitter lands after a successful intake
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"work-forward" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		Region          string `default:"us-east-1" env:"S3_REGION"`
		BucketName      string `default:"work-forward-resumes" env:"S3_BUCKET_NAME"`
		TimeoutSec      int    `default:"30" env:"S3_TIMEOUT_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		TimeoutSec int    `default:"30" env:"SMTP_TIMEOUT_SEC"`
	}
	Notify struct {
		// OwnerEmail always opens the recipient list; SenderEmail is
		// the envelope from address.
		OwnerEmail  string `default:"" env:"NOTIFY_OWNER_EMAIL"`
		SenderEmail string `default:"" env:"NOTIFY_SENDER_EMAIL"`
		// Ordered form field names whose non-empty values are appended
		// to the recipient list after the owner.
		RoutingKeys string `default:"email_submission,job1,goodwill,tca" env:"NOTIFY_ROUTING_KEYS"`
	}
	Ledger struct {
		Enabled   *bool  `default:"false" env:"LEDGER_ENABLED"`
		FilePath  string `default:"ledger/submissions.xlsx" env:"LEDGER_FILE_PATH"`
		SheetName string `default:"Submissions" env:"LEDGER_SHEET_NAME"`
	}
}

func (c Configuration) GetRoutingKeys() []string {
	keys := []string{}
	for _, key := range strings.Split(c.Notify.RoutingKeys, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
