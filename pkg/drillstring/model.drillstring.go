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

/*
	DRILL STRING (AGGREGATE ROOT)

TOP-TO-BOTTOM ASSEMBLY ORDER OF THE SECTION LIST IS SIGNIFICANT.
THE AGGREGATE EXCLUSIVELY OWNS ITS SECTIONS, THEIR COMPONENTS AND
PARTS; IT IS CREATED, READ, UPDATED AND DELETED AS A WHOLE.
*/
type DrillString struct {
	MetaInfo             *MetaInfo            `json:"meta_info"`
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	CreationDate         int64                `json:"creation_date"`          // UNIX MILLI; 0 = UNSET
	LastModificationDate int64                `json:"last_modification_date"` // UNIX MILLI; 0 = UNSET
	WellBoreID           *string              `json:"well_bore_id"`
	SectionList          []DrillStringSection `json:"section_list"`
}

/*
	DRILL STRING LIGHT

PROJECTION OF THE DRILL STRING ROW USED FOR LISTING, SORTING AND
FILTERING WITHOUT MATERIALIZING THE FULL DOCUMENT
*/
type DrillStringLight struct {
	MetaInfo             *MetaInfo `json:"meta_info"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	CreationDate         int64     `json:"creation_date"`
	LastModificationDate int64     `json:"last_modification_date"`
	WellBoreID           *string   `json:"well_bore_id"`
}
