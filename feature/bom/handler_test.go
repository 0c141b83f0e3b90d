package bom

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"team-inventory/core/middleware/team"
	"team-inventory/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fakeGuard(teamID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(team.LocalsID, teamID)
		c.Locals(team.LocalsNumber, "1234A")
		return c.Next()
	}
}

func setupTestApp(t *testing.T) *fiber.App {
	db := setupDB(t)
	seedRobotParts(t, db)
	app := fiber.New()
	feature := NewFeature(testDeps(db), fakeGuard(1))
	assert.Equal(t, "bom", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func send(t *testing.T, app *fiber.App, method, path, contentType string, body io.Reader) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHandler_UploadJSON(t *testing.T) {
	app := setupTestApp(t)

	body := `{"buildName":"Drive Base","simulation":true,"partsList":[{"part_number":"217-2700","quantity":3,"name":"Gear"},{"part_number":"999-0000","quantity":1}]}`
	status, resp := send(t, app, "POST", "/bom/upload", fiber.MIMEApplicationJSON, strings.NewReader(body))
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["simulation"])
	assert.Equal(t, 1.0, resp["buildId"])

	summary := resp["summary"].(map[string]any)
	assert.Equal(t, 2.0, summary["total_parts"])
	assert.Equal(t, 1.0, summary["missing"])
	assert.Equal(t, 23.97, summary["total_cost"])

	alerts := resp["alerts"].([]any)
	require.Len(t, alerts, 1)
	assert.Equal(t, "missing", alerts[0].(map[string]any)["type"])
}

func TestHandler_UploadMultipart(t *testing.T) {
	app := setupTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "bom.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Part Number,Qty,Name\n217-2700,2,Gear\n276-2177,3,Motor\n"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("build_name", "Lift"))
	require.NoError(t, w.WriteField("simulation", "false"))
	require.NoError(t, w.Close())

	status, resp := send(t, app, "POST", "/bom/upload", w.FormDataContentType(), &buf)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, resp["simulation"])

	summary := resp["summary"].(map[string]any)
	assert.Equal(t, 1.0, summary["insufficient"])

	status, detail := send(t, app, "GET", "/builds/1", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Lift", detail["name"])
	assert.Equal(t, "processed", detail["status"])
	parts := detail["parts"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, -1.0, parts[1].(map[string]any)["in_stock"])
}

func TestHandler_UploadErrors(t *testing.T) {
	app := setupTestApp(t)

	status, resp := send(t, app, "POST", "/bom/upload", fiber.MIMEApplicationJSON, strings.NewReader(`{"partsList":[]}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", resp["code"])

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "bom.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("sku,count\nP1,1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	status, resp = send(t, app, "POST", "/bom/upload", w.FormDataContentType(), &buf)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, resp["success"])
}

func TestHandler_Builds(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/builds", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	send(t, app, "POST", "/bom/upload", fiber.MIMEApplicationJSON, strings.NewReader(`{"partsList":[{"part_number":"217-2700","quantity":1}]}`))

	resp, err = app.Test(httptest.NewRequest("GET", "/builds", nil))
	require.NoError(t, err)
	var builds []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&builds))
	require.Len(t, builds, 1)
	assert.Equal(t, DefaultBuildName, builds[0]["name"])
	assert.Equal(t, 1.0, builds[0]["part_count"])
	assert.Equal(t, 7.99, builds[0]["total_cost"])

	status, _ := send(t, app, "GET", "/builds/42", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = send(t, app, "GET", "/builds/abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := send(t, app, "GET", "/builds/1/bom", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "BOM archive is disabled", body["error"])
}

func TestHandler_DownloadBOM(t *testing.T) {
	db := setupDB(t)
	seedRobotParts(t, db)
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "inventory", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	store.On("GetObject", mock.Anything, "inventory", "boms/1234A/1.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("part_number,quantity\n217-2700,1\n")), nil)

	deps := testDeps(db)
	deps.Archiver = NewArchiver(store, "inventory")
	app := fiber.New()
	require.NoError(t, NewFeature(deps, fakeGuard(1)).Load(app))

	send(t, app, "POST", "/bom/upload", fiber.MIMEApplicationJSON, strings.NewReader(`{"partsList":[{"part_number":"217-2700","quantity":1}]}`))

	resp, err := app.Test(httptest.NewRequest("GET", "/builds/1/bom", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "build-1.csv")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "part_number,quantity\n217-2700,1\n", string(raw))
}
