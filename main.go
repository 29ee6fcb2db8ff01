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

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/leehayford/dss/pkg"
	"github.com/leehayford/dss/pkg/drillstring"
)

func main() {

	cleanDB := flag.Bool("clean", false, "Drop and recreate the DSS database")
	flag.Parse()

	if err := pkg.LoadConfig("."); err != nil {
		log.Fatal(err)
	}

	exists := false
	if pkg.DSS_DB_DRIVER == "sqlite" {

		/* SINGLE-FILE MODE - NO ADMIN DATABASE */
		pkg.DSS.ConnStr = pkg.DSS_DB_FILE
		if err := pkg.DSS.ConnectSQLite(pkg.DSS_DB_FILE); err != nil {
			log.Fatal(err)
		}
		defer pkg.DSS.Disconnect()

		exists = pkg.DSS.Migrator().HasTable(&pkg.User{})

	} else {

		/* ADMIN DB - CONNECT TO THE ADMIN DATABASE */
		pkg.ADB.ConnStr = pkg.ADMIN_DB_CONNECTION_STRING
		if err := pkg.ADB.Connect(); err != nil {
			log.Fatal(err)
		}
		defer pkg.ADB.Disconnect()

		if *cleanDB {
			pkg.ADB.DropDatabase(pkg.DSS_DB)
		}

		/* CREATE OR MIGRATE DSS DATABASE & CONNECT */
		exists = pkg.ADB.CheckDatabaseExists(pkg.DSS_DB)
		if !exists {
			if err := pkg.ADB.CreateDatabase(pkg.DSS_DB); err != nil {
				log.Fatal(err)
			}
		}

		pkg.DSS.ConnStr = pkg.DSS_DB_CONNECTION_STRING
		if err := pkg.DSS.Connect(); err != nil {
			log.Fatal(err)
		}
		defer pkg.DSS.Disconnect()
	}

	/* IF DSS DATABASE DIDN'T ALREADY EXIST, CREATE TABLES, OTHERWISE MIGRATE */
	if err := pkg.DSS.CreateDSSTables(exists); err != nil {
		log.Fatal(err)
	}
	if err := drillstring.CreateTables(pkg.DSS.DB, exists); err != nil {
		log.Fatal(err)
	}

	dsRepo := drillstring.NewDrillStringRepo(pkg.DSS.DB)
	comRepo := drillstring.NewComponentRepo(pkg.DSS.DB)

	/* MAIN SERVER */
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		/* TODO: LIMIT ALLOWED ORIGINS FOR PRODUCTION DEPLOYMENT */
		AllowOrigins:     "http://localhost:8080, http://localhost:4173, http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Cache-Control",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))

	/* API ROUTES */
	api := fiber.New()
	app.Mount("/api", api)

	pkg.InitializeUserRoutes(api)
	drillstring.InitializeDrillStringRoutes(api, dsRepo)
	drillstring.InitializeComponentRoutes(api, comRepo)

	api.All("*", func(c *fiber.Ctx) error {
		path := c.Path()
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "fail",
			"message": fmt.Sprintf("Path: %v does not exists on this server", path),
		})
	})

	log.Fatal(app.Listen(fmt.Sprintf("127.0.0.1:%s", pkg.DSS_HTTP_PORT)))
}
