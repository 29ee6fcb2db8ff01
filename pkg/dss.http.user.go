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
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func InitializeUserRoutes(api *fiber.App) {
	api.Route("/user", func(router fiber.Router) {

		router.Post("/register", HandleRegisterUser)
		router.Post("/login", HandleLoginUser)
		router.Post("/refresh", DssAuth, HandleRefreshAccessToken)
		router.Post("/logout", DssAuth, HandleLogoutUser)

		router.Get("/list", DssAuth, HandleGetUserList)
	})
}

/* AUTHENTICATE USER AND GET THEIR ROLE */
func DssAuth(c *fiber.Ctx) (err error) {

	authorization := c.Get("Authorization")

	tokenString := ""
	if strings.HasPrefix(authorization, "Bearer ") {
		tokenString = strings.TrimPrefix(authorization, "Bearer ")
	} else if c.Cookies("token") != "" {
		tokenString = c.Cookies("token")
	} else if c.Query("access_token") != "" {
		tokenString = c.Query("access_token")
	}
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).SendString("Please log in.")
	}

	claims, err := GetClaimsFromTokenString(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
	}

	c.Locals("role", claims["rol"])
	c.Locals("sub", claims["sub"])

	return c.Next()
}

/* CREATE A NEW USER WITH DEFAULT ROLES */
func HandleRegisterUser(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	runp := RegisterUserInput{}
	if err := c.BodyParser(&runp); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if errors := ValidateStruct(runp); errors != nil {
		txt := fmt.Sprintf("Invalid request body: %v", errors)
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if runp.Password != runp.PasswordConfirm {
		return c.Status(fiber.StatusBadRequest).SendString("Passwords do not match.")
	}

	user, err := RegisterUser(runp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user.FilterUserRecord()})
}

/* AUTHENTICATE USER INPUT AND RETURN JWTs */
func HandleLoginUser(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	lunp := LoginUserInput{}
	if err := c.BodyParser(&lunp); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if errors := ValidateStruct(lunp); errors != nil {
		txt := fmt.Sprintf("Invalid request body: %v", errors)
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	/* ATTEMPT LOGIN */
	us, err := LoginUser(lunp)
	if err != nil {
		txt := fmt.Sprintf("Login failed: %v", err)
		return c.Status(fiber.StatusBadGateway).SendString(txt)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user_session": us})
}

/* VERIFY REFRESH TOKEN AND RETURN NEW ACCESS TOKEN */
func HandleRefreshAccessToken(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	us := UserSession{}
	if err := c.BodyParser(&us); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	if err = us.RefreshAccessToken(); err != nil {
		txt := fmt.Sprintf("Login refresh failed: %s", err.Error())
		return c.Status(fiber.StatusUnauthorized).SendString(txt)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user_session": us})
}

func HandleLogoutUser(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	us := UserSession{}
	if err := c.BodyParser(&us); err != nil {
		txt := fmt.Sprintf("Invalid request body: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).SendString(txt)
	}

	usx, err := UserSessionsMapRead(us.SID.String())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	usx.LogoutUser()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "You have logged out."})
}

/* RETURNS A LIST OF FILTERED USER RECORDS */
func HandleGetUserList(c *fiber.Ctx) (err error) {

	userList, err := GetUserList()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": userList})
}
