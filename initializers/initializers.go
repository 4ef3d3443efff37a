package initializers

import (
	"context"

	"work-forward-backend/config"
	"work-forward-backend/fiberlog"
	xlsexport "work-forward-backend/lib/export/xls"
	"work-forward-backend/lib/intake"
	"work-forward-backend/lib/ledger"
	"work-forward-backend/lib/notification"
	"work-forward-backend/lib/recipients"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	recipients.NewHandler(config.Conf.Notify.OwnerEmail, config.Conf.GetRoutingKeys())
	notification.NewHandler(config.Conf.Notify.SenderEmail)
	if *config.Conf.Ledger.Enabled {
		ledger.NewHandler(config.Conf.Ledger.FilePath, config.Conf.Ledger.SheetName)
	}
	xlsexport.NewHandler()
	// intake wires the pipeline and must come after its collaborators
	intake.NewHandler()
}
