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
	COMPONENT REPOSITORY

STANDALONE PERSISTENCE FOR DrillStringComponent AGGREGATES SO
COMPONENT DEFINITIONS CAN BE REUSED ACROSS STRINGS. SAME LOCK AND
TRANSACTION DISCIPLINE AS DrillStringRepo.
*/
type ComponentRepo struct {
	DB *gorm.DB
	mu sync.Mutex
}

func NewComponentRepo(db *gorm.DB) *ComponentRepo {
	return &ComponentRepo{DB: db}
}

func newComponentRow(com *DrillStringComponent) (row DrillStringComponentRow, err error) {

	meta, err := json.Marshal(com.MetaInfo)
	if err != nil {
		return row, pkg.LogErr(err)
	}
	doc, err := json.Marshal(com)
	if err != nil {
		return row, pkg.LogErr(err)
	}

	row = DrillStringComponentRow{
		ID:                   com.MetaInfo.ID,
		MetaInfo:             string(meta),
		Name:                 com.Name,
		Description:          com.Description,
		CreationDate:         com.CreationDate,
		LastModificationDate: com.LastModificationDate,
		DrillStringComponent: string(doc),
	}
	return
}

func validComponent(com *DrillStringComponent) bool {
	return com != nil && com.MetaInfo != nil && pkg.ValidateUUIDString(com.MetaInfo.ID)
}

func (repo *ComponentRepo) Count() (count int64, err error) {
	if res := repo.DB.Model(&DrillStringComponentRow{}).Count(&count); res.Error != nil {
		return 0, storageErr(res.Error)
	}
	return
}

func (repo *ComponentRepo) Contains(id string) bool {
	var count int64
	repo.DB.Model(&DrillStringComponentRow{}).Where("id = ?", id).Count(&count)
	return count >= 1
}

func (repo *ComponentRepo) GetAllIDs() (ids []string, err error) {
	ids = []string{}
	if res := repo.DB.Model(&DrillStringComponentRow{}).Pluck("id", &ids); res.Error != nil {
		return nil, storageErr(res.Error)
	}
	return
}

func (repo *ComponentRepo) GetAllMetaInfo() (metas []MetaInfo, err error) {

	strs := []string{}
	if res := repo.DB.Model(&DrillStringComponentRow{}).Pluck("meta_info", &strs); res.Error != nil {
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
func (repo *ComponentRepo) GetAllLight() (lights []DrillStringComponentLight, err error) {

	rows := []DrillStringComponentRow{}
	res := repo.DB.Model(&DrillStringComponentRow{}).
		Select("id", "meta_info", "name", "description", "creation_date", "last_modification_date").
		Find(&rows)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}

	lights = []DrillStringComponentLight{}
	for _, row := range rows {
		meta := MetaInfo{}
		if err = json.Unmarshal([]byte(row.MetaInfo), &meta); err != nil {
			pkg.LogErr(err)
			return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
		}
		lights = append(lights, DrillStringComponentLight{
			MetaInfo:             &meta,
			Name:                 row.Name,
			Description:          row.Description,
			CreationDate:         row.CreationDate,
			LastModificationDate: row.LastModificationDate,
		})
	}
	return
}

func (repo *ComponentRepo) GetByID(id string) (com *DrillStringComponent, err error) {

	if !pkg.ValidateUUIDString(id) {
		return nil, fmt.Errorf("%w: component ID is missing or malformed", pkg.ErrValidation)
	}

	row := DrillStringComponentRow{}
	res := repo.DB.First(&row, "id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no component with ID %s", pkg.ErrNotFound, id)
		}
		return nil, storageErr(res.Error)
	}

	com = &DrillStringComponent{}
	if err = json.Unmarshal([]byte(row.DrillStringComponent), com); err != nil {
		pkg.LogErr(err)
		return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
	}

	/* DEFENSIVE CONSISTENCY CHECK AGAINST WRITE-PATH BUGS */
	if com.MetaInfo == nil || com.MetaInfo.ID != id {
		return nil, corruptErr(id)
	}
	return
}

func (repo *ComponentRepo) GetAll() (list []DrillStringComponent, err error) {

	strs := []string{}
	if res := repo.DB.Model(&DrillStringComponentRow{}).Pluck("drill_string_component", &strs); res.Error != nil {
		return nil, storageErr(res.Error)
	}

	list = []DrillStringComponent{}
	for _, str := range strs {
		com := DrillStringComponent{}
		if err = json.Unmarshal([]byte(str), &com); err != nil {
			pkg.LogErr(err)
			return nil, fmt.Errorf("%w: %v", pkg.ErrCorrupt, err)
		}
		list = append(list, com)
	}
	return
}

/* INSERT-IF-ABSENT; THE PRIMARY-KEY CONSTRAINT CLOSES THE
CHECK-THEN-ACT RACE AND SURFACES AS A CLEAN CONFLICT */
func (repo *ComponentRepo) Add(com *DrillStringComponent) (err error) {

	if !validComponent(com) {
		return fmt.Errorf("%w: component ID is missing or empty", pkg.ErrValidation)
	}
	if com.Type != "" && !com.Type.Valid() {
		return fmt.Errorf("%w: unknown component type %q", pkg.ErrValidation, com.Type)
	}

	row, err := newComponentRow(com)
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
			return fmt.Errorf("%w: component %s", pkg.ErrConflict, com.MetaInfo.ID)
		}
		return storageErr(err)
	}
	return
}

func (repo *ComponentRepo) UpdateByID(id string, com *DrillStringComponent) (err error) {

	if !validComponent(com) || com.MetaInfo.ID != id {
		return fmt.Errorf("%w: component ID is missing or does not match %s", pkg.ErrValidation, id)
	}
	if com.Type != "" && !com.Type.Valid() {
		return fmt.Errorf("%w: unknown component type %q", pkg.ErrValidation, com.Type)
	}

	row, err := newComponentRow(com)
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrValidation, err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DrillStringComponentRow{}).Where("id = ?", id).Updates(map[string]interface{}{
			"meta_info":              row.MetaInfo,
			"name":                   row.Name,
			"description":            row.Description,
			"creation_date":          row.CreationDate,
			"last_modification_date": row.LastModificationDate,
			"drill_string_component": row.DrillStringComponent,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no component with ID %s", pkg.ErrNotFound, id)
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

func (repo *ComponentRepo) DeleteByID(id string) (err error) {

	if !pkg.ValidateUUIDString(id) {
		return fmt.Errorf("%w: component ID is missing or malformed", pkg.ErrValidation)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&DrillStringComponentRow{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no component with ID %s", pkg.ErrNotFound, id)
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
func (repo *ComponentRepo) Clear() (err error) {

	repo.mu.Lock()
	defer repo.mu.Unlock()

	err = repo.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Where("1 = 1").Delete(&DrillStringComponentRow{}).Error
	})
	if err != nil {
		return storageErr(err)
	}
	return
}
