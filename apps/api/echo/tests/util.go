package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	. "github.com/jyvarssudha/Smartamenitiescampusapp/apps/api/echo"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
	emailsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/email"
	metricsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/metrics"
	membucket "github.com/jyvarssudha/Smartamenitiescampusapp/storage/bucket/memory"
	inmemdb "github.com/jyvarssudha/Smartamenitiescampusapp/storage/database/inmem"
	sqlxrepos "github.com/jyvarssudha/Smartamenitiescampusapp/storage/database/sqlx"
	"github.com/jyvarssudha/Smartamenitiescampusapp/tests"
)

// fixed code issued by the user service mock
const otpCode = "424242"

var (
	conf = testutil.NewConfig()

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}

	student = user.User{ID: "715521104001", Name: "Asha Raman", Email: "asha@psgitech.ac.in", Role: user.RoleStudent, Department: "CSE"}
	faculty = user.User{ID: "EMP001", Name: "Dr. Ramesh Kumar", Email: "ramesh@psgitech.ac.in", Role: user.RoleTeachingStaff, Department: "CSE"}
	ptStaff = user.User{ID: "PT01", Name: "Coach Prakash", Email: "prakash@psgitech.ac.in", Role: user.RoleNonTeachingStaff}
	mHead   = user.User{ID: "MH01", Name: "Suresh Babu", Email: "suresh@psgitech.ac.in", Role: user.RoleMaintenanceHead}
)

type app struct {
	Server
	db       *inmemdb.DB
	users    user.Backend
	registry *prometheus.Registry
}

// setup serves a freshly seeded in-memory store. The persistence collaborator is unavailable (demo mode)
// except for users, kept in memory.
func setup(t *testing.T) *app {
	t.Helper()
	logger := testutil.NewLogger()
	validate, translator := testutil.NewValidator()
	user.InitValidators(validate, translator)
	core.ParseEmailTemplates(logger, conf)
	emailsvc.ResetSentMessages()

	db := inmemdb.Open()
	if err := db.Seed(); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	users := inmemdb.NewUserBackend(db)
	registry := prometheus.NewRegistry()
	metrics := metricsvc.NewPrometheusMetrics(registry)

	usrSvc := user.NewServiceMock(users, emailsvc.NewConsoleServiceMock(conf, logger), conf, logger, metrics, otpCode)
	maintenanceSvc := maintenance.NewService(inmemdb.NewMaintenanceRepository(db), &sqlxrepos.Unavailable{}, logger, metrics)
	classroomSvc := classroom.NewService(inmemdb.NewClassroomRepository(db))
	stadiumSvc := stadium.NewService(stadium.NewBridge(membucket.NewStore(), logger, metrics))

	engine := workflow.NewEngine(logger, metrics)
	engine.Register(workflow.KindComplaint, maintenanceSvc.ComplaintApplier())
	engine.Register(workflow.KindBooking, maintenanceSvc.BookingApplier())
	engine.Register(workflow.KindRequest, classroomSvc.RequestApplier())

	return &app{
		Server: NewServer(ServerDeps{
			Conf:           conf,
			Logger:         logger,
			UserSvc:        usrSvc,
			MaintenanceSvc: maintenanceSvc,
			ClassroomSvc:   classroomSvc,
			StadiumSvc:     stadiumSvc,
			DirectorySvc:   directory.NewService(&sqlxrepos.Unavailable{}, logger),
			Workflow:       engine,
			Validate:       validate,
			Translator:     translator,
			Gatherer:       registry,
		}),
		db:       db,
		users:    users,
		registry: registry,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// do serves one request and returns the recorder.
func (a *app) do(method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	a.ServeHTTP(rec, req)
	return rec
}

func getToken(t *testing.T, usr user.User) string {
	token, err := GenerateToken(conf, GetUserClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarchall(t *testing.T, data []byte, obj interface{}) {
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarchall() failed: %v; data %s", err, data)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, a *app, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			checkCodeAndData(t, tt, a.do(method, tt.path, tt.token, tt.body))
		})
	}
}
