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

type ComponentController struct {
	Repo *ComponentRepo
}

func InitializeComponentRoutes(api *fiber.App, repo *ComponentRepo) {

	ctrl := &ComponentController{Repo: repo}

	api.Route("/component", func(router fiber.Router) {

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

func (ctrl *ComponentController) HandleGetAllIDs(c *fiber.Ctx) (err error) {

	ids, err := ctrl.Repo.GetAllIDs()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ids": ids})
}

func (ctrl *ComponentController) HandleGetAllMetaInfo(c *fiber.Ctx) (err error) {

	metas, err := ctrl.Repo.GetAllMetaInfo()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"meta_infos": metas})
}

func (ctrl *ComponentController) HandleGetAllLight(c *fiber.Ctx) (err error) {

	lights, err := ctrl.Repo.GetAllLight()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"components": lights})
}

func (ctrl *ComponentController) HandleGetAll(c *fiber.Ctx) (err error) {

	list, err := ctrl.Repo.GetAll()
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"components": list})
}

func (ctrl *ComponentController) HandleGetByID(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid component ID.")
	}

	com, err := ctrl.Repo.GetByID(id)
	if err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"component": com})
}

func (ctrl *ComponentController) HandleAdd(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to create components.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	com := DrillStringComponent{}
	if err := c.BodyParser(&com); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if com.MetaInfo == nil {
		return c.Status(fiber.StatusBadRequest).SendString("Component meta info is required.")
	}
	if errors := pkg.ValidateStruct(com.MetaInfo); errors != nil {
		txt := fmt.Sprintf("Invalid request body: %v", errors)
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if err = ctrl.Repo.Add(&com); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"component": &com})
}

func (ctrl *ComponentController) HandleUpdateByID(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to update components.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid component ID.")
	}

	com := DrillStringComponent{}
	if err := c.BodyParser(&com); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if err = ctrl.Repo.UpdateByID(id, &com); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"component": &com})
}

func (ctrl *ComponentController) HandleDeleteByID(c *fiber.Ctx) (err error) {

	/* CHECK USER PERMISSION */
	if !pkg.UserRole_Operator(c.Locals("role")) {
		return c.Status(fiber.StatusForbidden).SendString("You must be an operator to delete components.")
	}

	/* PARSE AND VALIDATE REQUEST DATA */
	id := c.Params("id")
	if !pkg.ValidateUUIDString(id) {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid component ID.")
	}

	if err = ctrl.Repo.DeleteByID(id); err != nil {
		return c.Status(pkg.HTTPStatus(err)).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Component deleted."})
}
