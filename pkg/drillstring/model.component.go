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

/* CLOSED SET OF COMPONENT TYPES */
type ComponentType string

const (
	TypeDrillPipe            ComponentType = "DrillPipe"
	TypeDrillCollar          ComponentType = "DrillCollar"
	TypeHeavyWeightDrillPipe ComponentType = "HeavyWeightDrillPipe"
	TypeJar                  ComponentType = "Jar"
	TypeMwd                  ComponentType = "Mwd"
	TypeStabilizer           ComponentType = "Stabilizer"
	TypeSteerableRotaryTool  ComponentType = "SteerableRotaryTool"
	TypeBit                  ComponentType = "Bit"
)

func (t ComponentType) Valid() bool {
	switch t {
	case TypeDrillPipe, TypeDrillCollar, TypeHeavyWeightDrillPipe, TypeJar,
		TypeMwd, TypeStabilizer, TypeSteerableRotaryTool, TypeBit:
		return true
	}
	return false
}

/*
	DRILL STRING COMPONENT

A NAMED, TYPED ASSEMBLY UNIT (PIPE, COLLAR, JAR, MWD...) OWNING AN
ORDERED SEQUENCE OF PARTS. PERSISTED TWO WAYS: INLINE WITHIN A
DrillString DOCUMENT, AND STANDALONE VIA ComponentRepo FOR REUSE
ACROSS STRINGS.
*/
type DrillStringComponent struct {
	MetaInfo             *MetaInfo                  `json:"meta_info"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description"`
	CreationDate         int64                      `json:"creation_date"`          // UNIX MILLI; 0 = UNSET
	LastModificationDate int64                      `json:"last_modification_date"` // UNIX MILLI; 0 = UNSET
	FieldID              *string                    `json:"field_id"`
	Type                 ComponentType              `json:"type"`
	PartList             []DrillStringComponentPart `json:"part_list"`
}

/* STORED NAME IS LEFT ALONE; AN EMPTY NAME READS AS "Component" */
func (com *DrillStringComponent) DisplayName() string {
	if com.Name == "" {
		return "Component"
	}
	return com.Name
}

/* DERIVED, NEVER STORED; BY CONSTRUCTION IT CANNOT DRIFT FROM PartList */
func (com *DrillStringComponent) Length() (length float64) {
	for i := range com.PartList {
		length += com.PartList[i].TotalLength
	}
	return
}

/*
	DRILL STRING COMPONENT LIGHT

PROJECTION OF THE STANDALONE COMPONENT ROW FOR LISTING / SORTING /
FILTERING WITHOUT MATERIALIZING THE FULL DOCUMENT
*/
type DrillStringComponentLight struct {
	MetaInfo             *MetaInfo `json:"meta_info"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	CreationDate         int64     `json:"creation_date"`
	LastModificationDate int64     `json:"last_modification_date"`
}
