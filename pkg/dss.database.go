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
	"strings"

	"golang.org/x/crypto/bcrypt" // go get golang.org/x/crypto/bcrypt

	"gorm.io/driver/postgres" // go get gorm.io/driver/postgres
	"gorm.io/driver/sqlite"   // go get gorm.io/driver/sqlite
	"gorm.io/gorm"            // go get gorm.io/gorm
	"gorm.io/gorm/logger"
)

/*
	DATABASE CLIENT

ALL DATABASES IN THE DSS ARE ACCESSED VIA A DBClient
*/
type DBClient struct {
	ConnStr string
	*gorm.DB
}

func (dbc *DBClient) GetDBName() string {
	str := strings.Split(dbc.ConnStr, "/")
	if len(str) == 4 {
		/* THIS IS A VALID CONNECTION STRING */
		return str[3]
	} else {
		return ""
	}
}

func (dbc *DBClient) Connect() (err error) {

	/* TranslateError MAPS DRIVER DUPLICATE-KEY ERRORS TO gorm.ErrDuplicatedKey,
	WHICH THE REPOSITORIES RELY ON TO REPORT CONFLICTS */
	if dbc.DB, err = gorm.Open(postgres.Open(dbc.ConnStr), &gorm.Config{TranslateError: true}); err != nil {
		return LogErr(err)
	}
	dbc.DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	dbc.DB.Logger = logger.Default.LogMode(logger.Error)

	return err
}

/* SINGLE-FILE MODE; MIRRORS THE ORIGINAL FIELD DEPLOYMENTS WITH NO POSTGRES AROUND */
func (dbc *DBClient) ConnectSQLite(file string) (err error) {

	if dbc.DB, err = gorm.Open(sqlite.Open(file), &gorm.Config{TranslateError: true}); err != nil {
		return LogErr(err)
	}
	dbc.DB.Logger = logger.Default.LogMode(logger.Error)

	return err
}

func (dbc *DBClient) Disconnect() (err error) {

	db, err := dbc.DB.DB()
	if err != nil {
		return LogErr(err)
	}
	if err = db.Close(); err != nil {
		return LogErr(err)
	}
	dbc.DB = nil
	return
}

/*
	ADMIN DATABASE

USED TO MANAGE ALL OTHER DATABASES ON THIS DSS; POSTGRES ONLY
*/
var ADB ADMINDatabase = ADMINDatabase{}

type ADMINDatabase struct{ DBClient }

func (adb *ADMINDatabase) CreateDatabase(db_name string) (err error) {
	db_name = strings.ToLower(db_name)
	createDBCommand := fmt.Sprintf(`CREATE DATABASE %s WITH OWNER = datacan
		ENCODING = 'UTF8' LC_COLLATE = 'C.UTF-8' LC_CTYPE = 'C.UTF-8' TABLESPACE = pg_default CONNECTION LIMIT = -1 IS_TEMPLATE = False;`,
		db_name,
	)
	fmt.Printf("\n(adb *ADMINDatabase) CreateDatabase( ): Creating %s...\n", db_name)
	res := adb.DB.Exec(createDBCommand)
	err = res.Error
	return
}
func (adb *ADMINDatabase) CheckDatabaseExists(db_name string) (exists bool) {
	db_name = strings.ToLower(db_name)
	checkExistsCommand := `SELECT EXISTS ( SELECT datname FROM pg_catalog.pg_database WHERE datname=? )`
	adb.DB.Raw(checkExistsCommand, db_name).Scan(&exists)
	return
}
func (adb *ADMINDatabase) DropDatabase(db_name string) {
	db_name = strings.ToLower(db_name)
	dropDBCommand := fmt.Sprintf(`DROP DATABASE %s WITH (FORCE)`, db_name)
	adb.DB.Exec(dropDBCommand)
}

/*
	DSS DATABASE

HOLDS THE USER TABLE AND ONE TABLE PER DRILL STRING AGGREGATE TYPE
*/
var DSS DSSDatabase = DSSDatabase{}

type DSSDatabase struct{ DBClient }

/* CREATE OR MIGRATE THE DSS CORE TABLES; AGGREGATE TABLES ARE
CREATED BY THE drillstring PACKAGE ON THE SAME CONNECTION */
func (dss DSSDatabase) CreateDSSTables(exists bool) (err error) {

	if exists {
		err = dss.DB.AutoMigrate(&User{})
	} else {
		if err = dss.DB.Migrator().CreateTable(&User{}); err != nil {
			return err
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(SPR_PW), bcrypt.DefaultCost)
		newUser := User{
			Name:     SPR_USER,
			Email:    strings.ToLower(SPR_EMAIL),
			Password: string(hashedPassword),
			Role:     ROLE_SUPER,
		}
		if result := dss.DB.Create(&newUser); result.Error != nil {
			fmt.Printf("\nCreate super user failed...\n%s\n", result.Error.Error())
			err = result.Error
		}
	}

	return err
}
