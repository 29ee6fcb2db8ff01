/* Drill String Server (DSS) is a component of the Datacan Data2Desk (D2D) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package pkg

import (
	"fmt"
	"time"

	"github.com/spf13/viper" // go get github.com/spf13/viper
)

/* USER ROLES */
const ROLE_SUPER = "super"
const ROLE_ADMIN = "admin"
const ROLE_OPERATOR = "operator"
const ROLE_VIEWER = "viewer"

/* SETTINGS - LOADED FROM .env / ENVIRONMENT ON BOOT - SEE LoadConfig( ) */
var (
	DSS_DB        string
	DSS_DB_DRIVER string /* "postgres" (default) OR "sqlite" */
	DSS_DB_FILE   string

	ADMIN_DB_CONNECTION_STRING string
	DSS_DB_CONNECTION_STRING   string

	DSS_HTTP_PORT string

	JWT_SECRET             string
	JWT_EXPIRED_IN         time.Duration
	JWT_REFRESH_EXPIRED_IN time.Duration

	SPR_USER  string
	SPR_EMAIL string
	SPR_PW    string
)

/* READS .env IN path IF PRESENT; ENVIRONMENT VARIABLES TAKE PRECEDENCE */
func LoadConfig(path string) (err error) {

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("DSS_DB_NAME", "dss_db")
	viper.SetDefault("DSS_DB_DRIVER", "postgres")
	viper.SetDefault("DSS_DB_FILE", "dss.db")
	viper.SetDefault("DSS_DB_HOST", "127.0.0.1")
	viper.SetDefault("DSS_DB_PORT", "5432")
	viper.SetDefault("DSS_DB_USER", "datacan")
	viper.SetDefault("DSS_DB_PASSWORD", "")
	viper.SetDefault("DSS_HTTP_PORT", "8008")
	viper.SetDefault("DSS_JWT_SECRET", "")
	viper.SetDefault("DSS_JWT_EXPIRED_IN", time.Minute*15)
	viper.SetDefault("DSS_JWT_REFRESH_EXPIRED_IN", time.Hour*24)
	viper.SetDefault("DSS_SPR_USER", "Super DSS")
	viper.SetDefault("DSS_SPR_EMAIL", "super@datacan.ca")
	viper.SetDefault("DSS_SPR_PW", "")

	if err = viper.ReadInConfig(); err != nil {
		/* NO .env IS FINE; WE RUN ON ENVIRONMENT + DEFAULTS */
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return LogErr(err)
		}
		err = nil
	}

	DSS_DB = viper.GetString("DSS_DB_NAME")
	DSS_DB_DRIVER = viper.GetString("DSS_DB_DRIVER")
	DSS_DB_FILE = viper.GetString("DSS_DB_FILE")

	host := viper.GetString("DSS_DB_HOST")
	port := viper.GetString("DSS_DB_PORT")
	user := viper.GetString("DSS_DB_USER")
	pw := viper.GetString("DSS_DB_PASSWORD")

	ADMIN_DB_CONNECTION_STRING = fmt.Sprintf("postgresql://%s:%s@%s:%s/postgres", user, pw, host, port)
	DSS_DB_CONNECTION_STRING = fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", user, pw, host, port, DSS_DB)

	DSS_HTTP_PORT = viper.GetString("DSS_HTTP_PORT")

	JWT_SECRET = viper.GetString("DSS_JWT_SECRET")
	JWT_EXPIRED_IN = viper.GetDuration("DSS_JWT_EXPIRED_IN")
	JWT_REFRESH_EXPIRED_IN = viper.GetDuration("DSS_JWT_REFRESH_EXPIRED_IN")

	SPR_USER = viper.GetString("DSS_SPR_USER")
	SPR_EMAIL = viper.GetString("DSS_SPR_EMAIL")
	SPR_PW = viper.GetString("DSS_SPR_PW")

	return
}
