package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyAquaDBType string = "AQUA_DB_TYPE"
	EnvKeyAquaDbPath string = "AQUA_DB_PATH"

	EnvKeyAquaHttpHostPort string = "AQUA_HTTP_HOST_PORT"

	EnvKeyAquaJwtSecret string = "AQUA_JWT_SECRET"

	LoggerNameAquaCore      string = "aqua_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldAquaCategory string = "category"

	LoggerCategoryAquaReading string = "reading"
	LoggerCategoryAquaAccount string = "account"
)
