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

package drillstring

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/leehayford/dss/pkg"
)

/*
	PERSISTED LAYOUT - ONE TABLE PER AGGREGATE TYPE

PROJECTED COLUMNS FOR INDEXED LOOKUP AND LIGHT LISTING, PLUS THE
FULL SERIALIZED AGGREGATE DOCUMENT IN ONE TEXT COLUMN
*/
type DrillStringRow struct {
	ID                   string `gorm:"primaryKey; type:varchar(36)"`
	MetaInfo             string `gorm:"not null"`
	Name                 string
	Description          string
	CreationDate         int64
	LastModificationDate int64
	WellBoreID           string `gorm:"type:varchar(36)"`
	DrillString          string `gorm:"not null"` // SERIALIZED AGGREGATE DOCUMENT
}

func (DrillStringRow) TableName() string { return "drill_strings" }

type DrillStringComponentRow struct {
	ID                   string `gorm:"primaryKey; type:varchar(36)"`
	MetaInfo             string `gorm:"not null"`
	Name                 string
	Description          string
	CreationDate         int64
	LastModificationDate int64
	DrillStringComponent string `gorm:"not null"` // SERIALIZED AGGREGATE DOCUMENT
}

func (DrillStringComponentRow) TableName() string { return "drill_string_components" }

/* CREATE OR MIGRATE THE AGGREGATE TABLES */
func CreateTables(db *gorm.DB, exists bool) (err error) {

	if exists {
		return db.AutoMigrate(
			&DrillStringRow{},
			&DrillStringComponentRow{},
		)
	}
	return db.Migrator().CreateTable(
		&DrillStringRow{},
		&DrillStringComponentRow{},
	)
}

/* BACKEND ERRORS ARE LOGGED AND CONVERTED AT THE REPOSITORY BOUNDARY;
THEY NEVER PROPAGATE RAW */
func storageErr(err error) error {
	pkg.LogErr(err)
	return fmt.Errorf("%w: %v", pkg.ErrStorageUnavailable, err)
}

func corruptErr(id string) error {
	err := fmt.Errorf("%w: stored document ID does not match row key %s", pkg.ErrCorrupt, id)
	pkg.LogErr(err)
	return err
}
