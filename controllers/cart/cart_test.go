package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedibld92/margueritecookie/cart"
	"github.com/hedibld92/margueritecookie/middleware"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/routes"
	"github.com/hedibld92/margueritecookie/session"
	"github.com/hedibld92/margueritecookie/store"
)

const seedCatalog = `{
  "cookies": [
    {"id": "1", "name": "Cookie Chocolat Noir", "price": 2.5},
    {"id": "2", "name": "Cookie Caramel Beurre Salé", "price": 3.8}
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte(seedCatalog), 0o644))

	svc := cart.NewService(store.NewCookieStore(path), session.NewMemoryStore())

	r := gin.New()
	r.Use(middleware.EnsureSession())
	routes.SetupCartRoutes(r, routes.Deps{Cart: svc})
	return r
}

// client keeps the session cookie across requests, like a browser would.
type client struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, models.Cart) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	var crt models.Cart
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))
	}
	return w, crt
}

func TestGetCartInitializesEmpty(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, crt := c.do(t, http.MethodGet, "/api/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
	assert.Zero(t, crt.Total)
}

func TestAddUpdateRemoveFlow(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, crt := c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 1, crt.Items[0].Quantity)
	assert.InDelta(t, 2.50, crt.Total, 0.001)

	// Same cookie again merges into the existing line
	w, crt = c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 3, crt.Items[0].Quantity)
	assert.InDelta(t, 7.50, crt.Total, 0.001)

	w, crt = c.do(t, http.MethodPut, "/api/cart/update/1", gin.H{"quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, crt.Items[0].Quantity)

	w, crt = c.do(t, http.MethodDelete, "/api/cart/remove/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
	assert.Zero(t, crt.Total)
}

func TestAddUnknownCookieReturns404(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "9999"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Cart untouched by the rejected add
	w, crt := c.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
}

func TestAddExplicitZeroQuantityReturns400(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "1", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnknownLineReturns404(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPut, "/api/cart/update/1", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateToZeroRemovesLine(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "2", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w, crt := c.do(t, http.MethodPut, "/api/cart/update/2", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
	assert.Zero(t, crt.Total)
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, crt := c.do(t, http.MethodDelete, "/api/cart/remove/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
}

func TestClearEndpoint(t *testing.T) {
	c := &client{r: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "1", "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w, crt := c.do(t, http.MethodPost, "/api/cart/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
	assert.Zero(t, crt.Total)
}

func TestSeparateSessionsGetSeparateCarts(t *testing.T) {
	r := newTestRouter(t)
	alice := &client{r: r}
	bob := &client{r: r}

	w, _ := alice.do(t, http.MethodPost, "/api/cart/add", gin.H{"cookieId": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	w, crt := bob.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, crt.Items)
}
