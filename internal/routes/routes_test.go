package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avantivendas/visitas-api/internal/config"
	"github.com/avantivendas/visitas-api/internal/export"
	"github.com/avantivendas/visitas-api/internal/models"
	"github.com/avantivendas/visitas-api/internal/timezone"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Agendamento{},
		&models.AuditLog{},
	))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		AuthMode:  config.AuthModeMemory,
	}

	r := gin.New()
	RegisterRoutes(r, db, nil, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, usuario, senha string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"login": usuario,
		"senha": senha,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createAgendamento(t *testing.T, r *gin.Engine, token string, override gin.H) *httptest.ResponseRecorder {
	t.Helper()

	body := gin.H{
		"Data":       "15/03/2026",
		"Hora":       "14:30",
		"Nome":       "Cliente A",
		"Telefone":   "11987654321",
		"Fechou":     "Sim",
		"Valor":      "1500",
		"CEP":        "01310100",
		"Observacao": "primeira visita",
	}
	for k, v := range override {
		body[k] = v
	}
	return doJSON(t, r, http.MethodPost, "/api/me/agendamentos", token, body)
}

func TestLoginFlow(t *testing.T) {
	r := setupRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		token := login(t, r, "Claudia", "1501")
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"login": "Claudia", "senha": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route without token is 401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/me/agendamentos", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateAndList(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "Claudia", "1501")

	w := createAgendamento(t, r, token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Agendamento
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "01310-100", created.CEP)
	assert.Equal(t, "(11) 98765-4321", created.Telefone)
	assert.Equal(t, "Claudia", created.Usuario)

	t.Run("listing returns the record with display valor", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/me/agendamentos", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []struct {
				Valor   string `json:"Valor"`
				Usuario string `json:"Usuario"`
			} `json:"data"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "R$ 1.500,00", resp.Data[0].Valor)
		assert.Equal(t, "Claudia", resp.Data[0].Usuario)
	})

	t.Run("invalid cep is rejected with no write", func(t *testing.T) {
		w := createAgendamento(t, r, token, gin.H{"CEP": "1234"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		list := doJSON(t, r, http.MethodGet, "/api/me/agendamentos", token, nil)
		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total, "rejected submission must not persist")
	})

	t.Run("owners never see each other", func(t *testing.T) {
		other := login(t, r, "Evandro", "0512")

		w := doJSON(t, r, http.MethodGet, "/api/me/agendamentos", other, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Total)

		forbidden := doJSON(t, r, http.MethodGet, "/api/me/agendamentos?owner=Claudia", other, nil)
		assert.Equal(t, http.StatusForbidden, forbidden.Code)
	})

	t.Run("supervisor sees everything", func(t *testing.T) {
		super := login(t, r, "Super", "0000")

		w := doJSON(t, r, http.MethodGet, "/api/me/agendamentos", super, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
	})
}

func TestExportEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "Claudia", "1501")

	require.Equal(t, http.StatusCreated, createAgendamento(t, r, token, nil).Code)

	w := doJSON(t, r, http.MethodGet, "/api/me/agendamentos/export?with_owner=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, export.MIMEType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), export.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Usuário", rows[0][len(rows[0])-1])
	assert.Equal(t, "Claudia", rows[1][len(rows[1])-1])
}

func TestMeAndLogout(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "Claudia", "1501")

	// Cinco horas no futuro: nunca coincide com o relógio que o
	// logout restaura, então a limpeza fica observável.
	remembered := timezone.Now().Add(5 * time.Hour).Format("15:04")

	require.Equal(t, http.StatusCreated,
		createAgendamento(t, r, token, gin.H{"Hora": remembered}).Code)

	t.Run("me returns the remembered hora", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			FormDefaults struct {
				Hora string `json:"hora"`
			} `json:"form_defaults"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, remembered, resp.FormDefaults.Hora)
	})

	t.Run("logout clears the form default", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		me := doJSON(t, r, http.MethodGet, "/api/me", token, nil)
		var resp struct {
			FormDefaults struct {
				Hora string `json:"hora"`
			} `json:"form_defaults"`
		}
		require.NoError(t, json.Unmarshal(me.Body.Bytes(), &resp))
		assert.Regexp(t, `^\d{2}:\d{2}$`, resp.FormDefaults.Hora)
		assert.NotEqual(t, remembered, resp.FormDefaults.Hora,
			"logout must drop the remembered hora")
	})
}
