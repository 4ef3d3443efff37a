package initializers

import (
	"time"

	"work-forward-backend/config"
	"work-forward-backend/lib/smtp"
)

func InitSmtp() {
	cfg := config.Conf.Smtp
	err := smtp.Connect(cfg.User, cfg.Password, cfg.Host, cfg.Port,
		*cfg.TLSEnabled, time.Duration(cfg.TimeoutSec)*time.Second)
	if err != nil {
		panic(err.Error())
	}
}
