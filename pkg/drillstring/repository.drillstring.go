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
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/leehayford/dss/pkg"
)

/*
	DRILL STRING REPOSITORY

ONE SHARED INSTANCE PER PROCESS, CONSTRUCTED IN main AND INJECTED
INTO THE CONTROLLERS. MUTATING OPERATIONS SERIALIZE ON mu AND RUN
IN A TRANSACTION; READS ARE NOT BLOCKED BY THE LOCK.
*/
type DrillStringRepo struct {
	DB *gorm.DB
	mu sync.Mutex
}

func NewDrillStringRepo(db *gorm.DB) *DrillStringRepo {
	return &DrillStringRepo{DB: db}
}

func newDrillStringRow(ds *DrillString) (row DrillStringRow, err error) {

	meta, err := json.Marshal(ds.MetaInfo)
	if err != nil {
		return row, pkg.LogErr(err)
	}
	doc, err := json.Marshal(ds)
	if err != nil {
		return row, pkg.LogErr(err)
	}

	wellBoreID := ""
	if ds.WellBoreID != nil {
		wellBoreID = *ds.WellBoreID
	}

	row = DrillStringRow{
		ID:                   ds.MetaInfo.ID,
		MetaInfo:             string(meta),
		Name:                 ds.Name,
		Description:          ds.Description,
		CreationDate:         ds.CreationDate,
		LastModificationDate: ds.LastModificationDate,
		WellBoreID:           wellBoreID,
		DrillString:          string(doc),
	}
	return
}

func validDrillString(ds *DrillString) bool {
	return ds != nil && ds.MetaInfo != nil && pkg.ValidateUUIDString(ds.MetaInfo.ID)
}

func (repo *DrillStringRepo) Count() (count int64, err error) {
	if res := repo.DB.Model(&DrillStringRow{}).Count(&count); res.Error != nil {
		return 0, storageErr(res.Error)
	}
	return
}

func (repo *DrillStringRepo) Contains(id string) bool {
	var count int64
	repo.DB.Model(&DrillStringRow{}).Where("id = ?", id).Count(&count)
	return count >= 1
}

func (repo *DrillStringRepo) GetAllIDs() (ids []string, err error) {
	ids = []string{}
	if res := repo.DB.Model(&DrillStringRow{}).Pluck("id", &ids); res.Error != nil {
		return nil, storageErr(res.Error)
	}
	return
}

func (repo *DrillStringRepo) GetAllMetaInfo() (metas []MetaInfo, err error) {

	strs := []string{}
	if res := repo.DB.Model(&DrillStringRow{}).Pluck("meta_info", &strs); res.Error != nil {
		return nil, storageErr(res.Error)
	}

	metas = []MetaInfo{}
	for _, str := range strs {
		meta := MetaInfo{}
		if err = json.Unmarshal([]byte(str), &meta); err != nil {
			pkg.LogErr(err)
			return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
		}
		metas = append(metas, meta)
	}
	return
}

/* LIGHT LISTING FROM PROJECTED COLUMNS; THE DOCUMENT COLUMN IS NEVER READ */
func (repo *DrillStringRepo) GetAllLight() (lights []DrillStringLight, err error) {

	rows := []DrillStringRow{}
	res := repo.DB.Model(&DrillStringRow{}).
		Select("id", "meta_info", "name", "description", "creation_date", "last_modification_date", "well_bore_id").
		Find(&rows)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}

	lights = []DrillStringLight{}
	for _, row := range rows {
		meta := MetaInfo{}
		if err = json.Unmarshal([]byte(row.MetaInfo), &meta); err != nil {
			pkg.LogErr(err)
			return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
		}
		light := DrillStringLight{
			MetaInfo:             &meta,
			Name:                 row.Name,
			Description:          row.Description,
			CreationDate:         row.CreationDate,
			LastModificationDate: row.LastModificationDate,
		}
		if row.WellBoreID != "" {
			wbid := row.WellBoreID
			light.WellBoreID = &wbid
		}
		lights = append(lights, light)
	}
	return
}

func (repo *DrillStringRepo) GetByID(id string) (ds *DrillString, err error) {

	if !pkg.ValidateUUIDString(id) {
		return nil, fmt.Errorf("%w: drill string ID is missing or malformed", pkg.ErrValidation)
	}

	row := DrillStringRow{}
	res := repo.DB.First(&row, "id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no drill string with ID %s", pkg.ErrNotFound, id)
		}
		return nil, storageErr(res.Error)
	}

	ds = &DrillString{}
	if err = json.Unmarshal([]byte(row.DrillString), ds); err != nil {
		pkg.LogErr(err)
		return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
	}

	/* DEFENSIVE CONSISTENCY CHECK AGAINST WRITE-PATH BUGS */
	if ds.MetaInfo == nil || ds.MetaInfo.ID != id {
		return nil, corruptErr(id)
	}
	return
}

func (repo *DrillStringRepo) GetAll() (list []DrillString, err error) {

	strs := []string{}
	if res := repo.DB.Model(&DrillStringRow{}).Pluck("drill_string", &strs); res.Error != nil {
		return nil, storageErr(res.Error)
	}

	list = []DrillString{}
	for _, str := range strs {
		ds := DrillString{}
		if err = json.Unmarshal([]byte(str), &ds); err != nil {
			pkg.LogErr(err)
			return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
		}
		list = append(list, ds)
	}
	return
}

/* INSERT-IF-ABSENT; THE PRIMARY-KEY CONSTRAINT CLOSES THE
CHECK-THEN-ACT RACE AND SURFACES AS A CLEAN CONFLICT */
func (repo *DrillStringRepo) Add(ds *DrillString) (err error) {

	if !validDrillString(ds) {
		return fmt.Errorf("%w: drill string ID is missing or empty", pkg.ErrValidation)
	}

	row, err := newDrillStringRow(ds)
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrValidation, err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: drill string %s", pkg.ErrConflict, ds.MetaInfo.ID)
		}
		return storageErr(err)
	}
	return
}

func (repo *DrillStringRepo) UpdateByID(id string, ds *DrillString) (err error) {

	if !validDrillString(ds) || ds.MetaInfo.ID != id {
		return fmt.Errorf("%w: drill string ID is missing or does not match %s", pkg.ErrValidation, id)
	}

	row, err := newDrillStringRow(ds)
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrValidation, err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DrillStringRow{}).Where("id = ?", id).Updates(map[string]interface{}{
			"meta_info":              row.MetaInfo,
			"name":                   row.Name,
			"description":            row.Description,
			"creation_date":          row.CreationDate,
			"last_modification_date": row.LastModificationDate,
			"well_bore_id":           row.WellBoreID,
			"drill_string":           row.DrillString,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no drill string with ID %s", pkg.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return err
		}
		return storageErr(err)
	}
	return
}

func (repo *DrillStringRepo) DeleteByID(id string) (err error) {

	if !pkg.ValidateUUIDString(id) {
		return fmt.Errorf("%w: drill string ID is missing or malformed", pkg.ErrValidation)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&DrillStringRow{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no drill string with ID %s", pkg.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return err
		}
		return storageErr(err)
	}
	return
}

/* EMPTIES THE TABLE; USED BY OPERATORS TO RESET DEMO DATA SETS */
func (repo *DrillStringRepo) Clear() (err error) {

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Where("1 = 1").Delete(&DrillStringRow{}).Error
	})
	if err != nil {
		return storageErr(err)
	}
	return
}
