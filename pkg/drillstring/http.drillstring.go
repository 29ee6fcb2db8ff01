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

	"github.com/gofiber/fiber/v2"

	"github.com/leehayford/dss/pkg"
)

type DrillStringController struct {
	Repo *DrillStringRepo
}

func InitializeDrillStringRoutes(api *fiber.App, repo *DrillStringRepo) {

	ctrl := &DrillStringController{Repo: repo}

	api.Route("/drillstring", func(router fiber.Router) {

		router.Get("/", ctrl.HandleGetAllIDs)
		router.Get("/metainfo", ctrl.HandleGetAllMetaInfo)
		router.Get("/light", ctrl.HandleGetAllLight)
		router.Get("/heavy", ctrl.HandleGetAll)
		router.Get("/:id", ctrl.HandleGetByID)

		router.Post("/", pkg.DssAuth, ctrl.HandleAdd)
		router.Put("/:id", pkg.DssAuth, ctrl.HandleUpdateByID)
		router.Delete("/:id", pkg.DssAuth, ctrl.HandleDeleteByID)
	})
}

func (ctrl *DrillStringController) HandleGetAllIDs(c *fiber.Ctx) (err error) {

	ids, err := ctrl.Repo.GetAllIDs()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ids": ids})
}

func (ctrl *DrillStringController) HandleGetAllMetaInfo(c *fiber.Ctx) (err error) {

	metas, err := ctrl.Repo.GetAllMetaInfo()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"meta_infos": metas})
}

func (ctrl *DrillStringController) HandleGetAllLight(c *fiber.Ctx) (err error) {

	lights, err := ctrl.Repo.GetAllLight()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"drill_strings": lights})
}

func (ctrl *DrillStringController) HandleGetAll(c *fiber.Ctx) (err error) {

	list, err := ctrl.Repo.GetAll()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"drill_strings": list})
}

func (ctrl *DrillStringController) HandleGetByID(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid drill string ID.")
	}

	ds, err := ctrl.Repo.GetByID(id)
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"drill_string": ds})
}

func (ctrl *DrillStringController) HandleAdd(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to create drill strings.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	ds := DrillString{}
	if err := c.BodyParser(&ds); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if ds.MetaInfo == nil {
		return c.Status(fiber.StatusBadRequest).SendString("Drill string meta info is required.")
	}
	if errors := pkg.ValidateStruct(ds.MetaInfo); errors != nil {
		txt := fmt.Sprintf("Invalid request body: %v", errors)
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if err = ctrl.Repo.Add(&ds); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"drill_string": &ds})
}

func (ctrl *DrillStringController) HandleUpdateByID(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to update drill strings.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid drill string ID.")
	}

	ds := DrillString{}
	if err := c.BodyParser(&ds); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if err = ctrl.Repo.UpdateByID(id, &ds); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"drill_string": &ds})
}

func (ctrl *DrillStringController) HandleDeleteByID(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to delete drill strings.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid drill string ID.")
	}

	if err = ctrl.Repo.DeleteByID(id); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Drill string deleted."})
}
