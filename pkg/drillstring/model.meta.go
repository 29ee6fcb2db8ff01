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
	IDENTITY BLOCK

EVERY PERSISTED AGGREGATE CARRIES ONE; THE ID IS CLIENT-SUPPLIED,
IMMUTABLE ONCE ASSIGNED, AND MUST BE A NON-ZERO UUID
*/
type MetaInfo struct {
	ID string `json:"id" validate:"required,uuid"`
}
