package initializers

import (
	"context"

	"recruiting-dashboard-backend/config"
	"recruiting-dashboard-backend/fiberlog"
	analyticshandler "recruiting-dashboard-backend/lib/analytics"
	assessmenthandler "recruiting-dashboard-backend/lib/assessment"
	authhandler "recruiting-dashboard-backend/lib/auth"
	candidatehandler "recruiting-dashboard-backend/lib/candidate"
	xlsexport "recruiting-dashboard-backend/lib/export/xls"
	filestorage "recruiting-dashboard-backend/lib/file-storage"
	interviewhandler "recruiting-dashboard-backend/lib/interview"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	candidatehandler.NewHandler()
	assessmenthandler.NewHandler()
	interviewhandler.NewHandler()
	analyticshandler.NewHandler()
}
