package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/services"
	"github.com/BlasTJSN/WebDesign-ihome/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================
// STUB del servicio para los tests
// ============================================

type stubHouseService struct {
	calls      int
	lastUserID uint
	houseID    uint
	err        error
}

func (s *stubHouseService) CreateHouse(userID uint, req dto.CreateHouseRequest) (uint, error) {
	s.calls++
	s.lastUserID = userID
	if s.err != nil {
		return 0, s.err
	}
	return s.houseID, nil
}

// newHouseRouter arma un router con la identidad ya inyectada,
// como la deja el middleware de auth en producción
func newHouseRouter(service services.HouseService, userID uint) *gin.Engine {
	router := gin.New()
	router.POST("/houses", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, NewHouseController(service).CreateHouse)
	return router
}

func validHouseBody() map[string]interface{} {
	return map[string]interface{}{
		"title":      "Departamento luminoso",
		"area_id":    1,
		"address":    "Av. Siempre Viva 742",
		"price":      "12.50",
		"room_count": 2,
		"acreage":    60,
		"unit":       "2 ambientes",
		"capacity":   3,
		"beds":       "1 matrimonial",
		"deposit":    "500",
		"min_days":   1,
		"max_days":   30,
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type houseEnvelope struct {
	Errno  string `json:"errno"`
	Errmsg string `json:"errmsg"`
	Data   struct {
		HouseID uint `json:"house_id"`
	} `json:"data"`
}

// ============================================
// TESTS
// ============================================

// Test: request completa devuelve errno 0 y el house_id generado
func TestCreateHouse_Success(t *testing.T) {
	service := &stubHouseService{houseID: 42}
	router := newHouseRouter(service, 7)

	recorder := postJSON(router, "/houses", validHouseBody())

	var resp houseEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}

	if resp.Errno != utils.RetOK {
		t.Errorf("Expected errno %s, got %s", utils.RetOK, resp.Errno)
	}

	if resp.Data.HouseID != 42 {
		t.Errorf("Expected house_id 42, got %d", resp.Data.HouseID)
	}

	if service.lastUserID != 7 {
		t.Errorf("Expected owner 7 from context, got %d", service.lastUserID)
	}
}

// Test: cada campo obligatorio faltante corta con PARAMERR sin llamar al servicio
func TestCreateHouse_MissingMandatoryField(t *testing.T) {
	mandatory := []string{
		"title", "area_id", "address", "price", "room_count", "acreage",
		"unit", "capacity", "beds", "deposit", "min_days", "max_days",
	}

	for _, field := range mandatory {
		service := &stubHouseService{houseID: 42}
		router := newHouseRouter(service, 7)

		body := validHouseBody()
		delete(body, field)

		recorder := postJSON(router, "/houses", body)

		var resp houseEnvelope
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("field %s: invalid response JSON: %v", field, err)
		}

		if resp.Errno != utils.RetParamErr {
			t.Errorf("field %s: expected errno %s, got %s", field, utils.RetParamErr, resp.Errno)
		}

		if service.calls != 0 {
			t.Errorf("field %s: expected zero service calls, got %d", field, service.calls)
		}
	}
}

// Test: body ausente también es PARAMERR
func TestCreateHouse_EmptyBody(t *testing.T) {
	service := &stubHouseService{}
	router := newHouseRouter(service, 7)

	req := httptest.NewRequest(http.MethodPost, "/houses", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var resp houseEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}

	if resp.Errno != utils.RetParamErr {
		t.Errorf("Expected errno %s, got %s", utils.RetParamErr, resp.Errno)
	}

	if service.calls != 0 {
		t.Errorf("Expected zero service calls, got %d", service.calls)
	}
}

// Test: los errores del servicio se mapean a sus errno
func TestCreateHouse_ServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{"invalid data", services.ErrInvalidData, utils.RetDataErr},
		{"database error", services.ErrDatabase, utils.RetDBErr},
	}

	for _, tc := range cases {
		service := &stubHouseService{err: tc.err}
		router := newHouseRouter(service, 7)

		recorder := postJSON(router, "/houses", validHouseBody())

		var resp houseEnvelope
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid response JSON: %v", tc.name, err)
		}

		if resp.Errno != tc.expected {
			t.Errorf("%s: expected errno %s, got %s", tc.name, tc.expected, resp.Errno)
		}
	}
}

// Test: sin identidad en el contexto se corta con SESSIONERR
func TestCreateHouse_MissingIdentity(t *testing.T) {
	service := &stubHouseService{}
	router := gin.New()
	router.POST("/houses", NewHouseController(service).CreateHouse)

	recorder := postJSON(router, "/houses", validHouseBody())

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", recorder.Code)
	}

	var resp houseEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}

	if resp.Errno != utils.RetSessionErr {
		t.Errorf("Expected errno %s, got %s", utils.RetSessionErr, resp.Errno)
	}

	if service.calls != 0 {
		t.Errorf("Expected zero service calls, got %d", service.calls)
	}
}
