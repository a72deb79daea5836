package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	Store  *store.Store
	Tokens *utils.SessionTokens
	Router *gin.Engine
	Dash   *gin.RouterGroup
	Token  string
}

// newTestEnv seeds a store, selects restaurant "1" and issues a token for it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	st := store.New(store.DefaultSeed(fixedNow))
	tokens := utils.NewSessionTokens("test-secret", time.Hour)
	st.SelectRestaurant("1")
	token, err := tokens.Generate("1", "admin@kelofa.com")
	require.NoError(t, err)

	r := gin.New()
	dash := r.Group("/dashboard")
	dash.Use(middlewares.RequireSession(st, tokens))

	return &testEnv{Store: st, Tokens: tokens, Router: r, Dash: dash, Token: token}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func (env *testEnv) newRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if env.Token != "" {
		req.Header.Set("Authorization", "Bearer "+env.Token)
	}
	return req
}

func (env *testEnv) do(t *testing.T, method, url string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, env.newRequest(t, method, url, body))

	var resp map[string]interface{}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// blockWrites makes the next event of kind stall for d, holding up every
// mutation queued behind it. It returns once that event is being handled.
func blockWrites(env *testEnv, kind store.EventKind, d time.Duration, trigger func()) {
	entered := make(chan struct{})
	var once sync.Once
	env.Store.Subscribe(func(ev store.Event) {
		if ev.Kind != kind {
			return
		}
		once.Do(func() {
			close(entered)
			time.Sleep(d)
		})
	})
	go trigger()
	<-entered
}
