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
	DRILL STRING SECTION

A NAMED GROUP OF COMPONENTS REPEATED Count TIMES IN THE STRING
(DRILL-PIPES, HEAVY WEIGHT DRILL PIPES, BHA...)
*/
type DrillStringSection struct {
	Name                 string                 `json:"name"`
	Count                int                    `json:"count" validate:"gte=0"`
	SectionComponentList []DrillStringComponent `json:"section_component_list"`
}
