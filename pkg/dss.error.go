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
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/*
	REPOSITORY ERROR KINDS

BACKEND ERRORS NEVER LEAVE THE REPOSITORY LAYER RAW; THEY ARE LOGGED
AND WRAPPED IN ONE OF THESE SO HANDLERS CAN MAP THEM TO STATUS CODES
*/
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrValidation         = errors.New("invalid record")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorrupt            = errors.New("stored record corrupted")
)

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		/* ErrStorageUnavailable, ErrCorrupt AND ANYTHING UNEXPECTED */
		return fiber.StatusInternalServerError
	}
}

/* REJECTS EMPTY, MALFORMED AND ZERO-VALUED UUIDs */
func ValidateUUIDString(id string) bool {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return uid != uuid.Nil
}
