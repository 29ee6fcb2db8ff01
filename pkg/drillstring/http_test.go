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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leehayford/dss/pkg"
)

func testApp(t *testing.T) *fiber.App {

	db := testDB(t)

	api := fiber.New()
	InitializeDrillStringRoutes(api, NewDrillStringRepo(db))
	InitializeComponentRoutes(api, NewComponentRepo(db))
	return api
}

func testToken(t *testing.T, role string) string {

	pkg.JWT_SECRET = "unit-test-secret"
	pkg.JWT_EXPIRED_IN = time.Minute * 15

	us := pkg.UserSession{USR: pkg.UserResponse{ID: uuid.New(), Role: role}}
	require.NoError(t, us.CreateJWTAccessToken())
	return us.ACCTok
}

func testRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func TestDrillStringRoutes(t *testing.T) {

	app := testApp(t)
	token := testToken(t, pkg.ROLE_OPERATOR)

	/* EMPTY LISTING */
	res := testRequest(t, app, "GET", "/drillstring/", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	/* CREATE */
	ds := newTestDrillString("string one")
	res = testRequest(t, app, "POST", "/drillstring/", token, ds)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	/* DUPLICATE CREATE */
	res = testRequest(t, app, "POST", "/drillstring/", token, ds)
	require.Equal(t, fiber.StatusConflict, res.StatusCode)

	/* READ BACK */
	res = testRequest(t, app, "GET", "/drillstring/"+ds.MetaInfo.ID, "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	env := struct {
		DrillString DrillString `json:"drill_string"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	require.Equal(t, "string one", env.DrillString.Name)
	require.Len(t, env.DrillString.SectionList, 2)

	/* MALFORMED AND UNKNOWN IDS */
	res = testRequest(t, app, "GET", "/drillstring/not-a-uuid", "", nil)
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = testRequest(t, app, "GET", "/drillstring/"+uuid.New().String(), "", nil)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)

	/* UPDATE - BODY ID MUST MATCH THE TARGET */
	ds.Name = "string one, revised"
	res = testRequest(t, app, "PUT", "/drillstring/"+ds.MetaInfo.ID, token, ds)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = testRequest(t, app, "PUT", "/drillstring/"+uuid.New().String(), token, ds)
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* PROJECTED LISTINGS */
	res = testRequest(t, app, "GET", "/drillstring/light", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	lightEnv := struct {
		DrillStrings []DrillStringLight `json:"drill_strings"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&lightEnv))
	require.Len(t, lightEnv.DrillStrings, 1)
	require.Equal(t, "string one, revised", lightEnv.DrillStrings[0].Name)

	res = testRequest(t, app, "GET", "/drillstring/metainfo", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = testRequest(t, app, "GET", "/drillstring/heavy", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	/* DELETE - SECOND ATTEMPT REPORTS NOT FOUND */
	res = testRequest(t, app, "DELETE", "/drillstring/"+ds.MetaInfo.ID, token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = testRequest(t, app, "DELETE", "/drillstring/"+ds.MetaInfo.ID, token, nil)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestDrillStringRoutesAuth(t *testing.T) {

	app := testApp(t)
	ds := newTestDrillString("string one")

	/* NO TOKEN */
	res := testRequest(t, app, "POST", "/drillstring/", "", ds)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	/* GARBAGE TOKEN */
	res = testRequest(t, app, "POST", "/drillstring/", "not.a.jwt", ds)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	/* VIEWERS CANNOT MUTATE */
	viewer := testToken(t, pkg.ROLE_VIEWER)
	res = testRequest(t, app, "POST", "/drillstring/", viewer, ds)
	require.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res = testRequest(t, app, "DELETE", "/drillstring/"+ds.MetaInfo.ID, viewer, nil)
	require.Equal(t, fiber.StatusForbidden, res.StatusCode)

	/* ADMINS CAN */
	admin := testToken(t, pkg.ROLE_ADMIN)
	res = testRequest(t, app, "POST", "/drillstring/", admin, ds)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)
}

func TestDrillStringRoutesBadBody(t *testing.T) {

	app := testApp(t)
	token := testToken(t, pkg.ROLE_OPERATOR)

	/* NO META INFO */
	res := testRequest(t, app, "POST", "/drillstring/", token, &DrillString{Name: "no id"})
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* MALFORMED DOCUMENT ID */
	res = testRequest(t, app, "POST", "/drillstring/", token,
		&DrillString{MetaInfo: &MetaInfo{ID: "not-a-uuid"}})
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestComponentRoutes(t *testing.T) {

	app := testApp(t)
	token := testToken(t, pkg.ROLE_OPERATOR)

	com := newTestComponent("8in collar")
	res := testRequest(t, app, "POST", "/component/", token, com)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = testRequest(t, app, "POST", "/component/", token, com)
	require.Equal(t, fiber.StatusConflict, res.StatusCode)

	res = testRequest(t, app, "GET", "/component/"+com.MetaInfo.ID, "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	env := struct {
		Component DrillStringComponent `json:"component"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	require.Equal(t, TypeDrillCollar, env.Component.Type)

	/* UNKNOWN COMPONENT TYPE IS REJECTED */
	bogus := newTestComponent("casing")
	bogus.Type = ComponentType("Casing")
	res = testRequest(t, app, "POST", "/component/", token, bogus)
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = testRequest(t, app, "GET", "/component/light", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = testRequest(t, app, "DELETE", "/component/"+com.MetaInfo.ID, token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = testRequest(t, app, "GET", "/component/"+com.MetaInfo.ID, "", nil)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
