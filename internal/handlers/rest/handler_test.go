package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/export"
	"github.com/KirkDiggler/crusade-api/internal/handlers/rest"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
	rostermock "github.com/KirkDiggler/crusade-api/internal/orchestrators/roster/mock"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
	"github.com/KirkDiggler/crusade-api/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *rostermock.MockService
	router  *mux.Router
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = rostermock.NewMockService(s.ctrl)

	handler, err := rest.NewHandler(&rest.HandlerConfig{Service: s.service})
	s.Require().NoError(err)
	s.router = handler.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HandlerTestSuite) snapshot() *roster.Snapshot {
	return &roster.Snapshot{
		List:       builders.NewListBuilder().Build(),
		Validation: &engine.Validation{Warnings: []engine.Warning{}},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := rest.NewHandler(&rest.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = rest.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateList() {
	s.service.EXPECT().
		CreateList(gomock.Any(), &roster.CreateListInput{
			Name:        "Test Crusade",
			Army:        testutils.TestArmy,
			Faction:     testutils.TestFaction,
			Allegiance:  testutils.TestAllegiance,
			PointsLimit: 1500,
		}).
		Return(&roster.CreateListOutput{Snapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/v1/lists", `{
		"name": "Test Crusade",
		"army": "Legiones Astartes",
		"faction": "Dark Angels",
		"allegiance": "Loyalist",
		"points_limit": 1500
	}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body struct {
		List       *armylist.List `json:"list"`
		Validation struct {
			Warnings []engine.Warning `json:"warnings"`
		} `json:"validation"`
	}
	s.decode(rec, &body)
	s.Equal(builders.TestListID, body.List.ID)
	s.Empty(body.Validation.Warnings)
}

func (s *HandlerTestSuite) TestCreateListRejectsBadBody() {
	s.Run("unknown field", func() {
		rec := s.do(http.MethodPost, "/v1/lists", `{"nmae": "typo"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("empty body", func() {
		rec := s.do(http.MethodPost, "/v1/lists", "")
		s.Equal(http.StatusBadRequest, rec.Code)

		var body errors.Response
		s.decode(rec, &body)
		s.Equal(errors.CodeInvalidArgument, body.Code)
	})
}

func (s *HandlerTestSuite) TestErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   errors.Code
	}{
		{"not found", errors.NotFound("list not found"), http.StatusNotFound, errors.CodeNotFound},
		{"slot occupied", errors.SlotOccupied("taken"), http.StatusConflict, errors.CodeSlotOccupied},
		{"precondition", errors.FailedPrecondition("no unlock"), http.StatusPreconditionFailed, errors.CodeFailedPrecondition},
		{"plain error", context.DeadlineExceeded, http.StatusInternalServerError, errors.CodeInternal},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().
				GetList(gomock.Any(), &roster.GetListInput{ListID: "list-1"}).
				Return(nil, tc.err)

			rec := s.do(http.MethodGet, "/v1/lists/list-1", "")
			s.Equal(tc.status, rec.Code)

			var body errors.Response
			s.decode(rec, &body)
			s.Equal(tc.code, body.Code)
		})
	}
}

func (s *HandlerTestSuite) TestListLists() {
	s.service.EXPECT().
		ListLists(gomock.Any(), &roster.ListListsInput{OwnerID: "player-1"}).
		Return(&roster.ListListsOutput{Lists: []*roster.ListSummary{{ID: "list-1", Name: "First", TotalPoints: 120}}}, nil)

	rec := s.do(http.MethodGet, "/v1/lists?owner=player-1", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"lists":[{"id":"list-1","name":"First","army":"","faction":"","allegiance":"","total_points":120,"detachments":0,"updated_at":0}]}`,
		rec.Body.String())
}

func (s *HandlerTestSuite) TestDeleteList() {
	s.service.EXPECT().
		DeleteList(gomock.Any(), &roster.DeleteListInput{ListID: "list-1"}).
		Return(&roster.DeleteListOutput{}, nil)

	rec := s.do(http.MethodDelete, "/v1/lists/list-1", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestAddUnit() {
	unit := &armylist.Unit{ID: "unit-1", Name: "Test Praetor", Role: armylist.RoleHighCommand, TotalCost: 120}
	s.service.EXPECT().
		AddUnit(gomock.Any(), &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           armylist.RoleHighCommand,
			SlotIndex:      0,
			UnitTemplateID: testutils.TestPraetorID,
		}).
		Return(&roster.AddUnitOutput{Snapshot: s.snapshot(), Unit: unit}, nil)

	rec := s.do(http.MethodPost, "/v1/lists/list-1/detachments/det-1/units",
		`{"role":"High Command","slot_index":0,"unit_template_id":"test-praetor"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body struct {
		List *armylist.List `json:"list"`
		Unit *armylist.Unit `json:"unit"`
	}
	s.decode(rec, &body)
	s.Equal("unit-1", body.Unit.ID)
	s.NotNil(body.List)
}

func (s *HandlerTestSuite) TestUpdateUnitEquipment() {
	s.service.EXPECT().
		UpdateUnitEquipment(gomock.Any(), &roster.UpdateUnitEquipmentInput{
			ListID: "list-1",
			UnitID: "unit-1",
			Operations: []engine.Operation{
				{Kind: engine.OperationSelect, Key: "g0:o0:i2"},
				{Kind: engine.OperationToggle, Key: "g1:o0"},
			},
		}).
		Return(nil, errors.InvalidOption("unit has no equipment option g1:o0"))

	rec := s.do(http.MethodPost, "/v1/lists/list-1/units/unit-1/equipment",
		`{"operations":[{"kind":"select","key":"g0:o0:i2"},{"kind":"toggle","key":"g1:o0"}]}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *HandlerTestSuite) TestLogisticalRoleRoutes() {
	s.service.EXPECT().
		ChangeLogisticalRole(gomock.Any(), &roster.ChangeLogisticalRoleInput{
			ListID:       "list-1",
			DetachmentID: "det-1",
			TriggeredBy:  "unit-1",
			Role:         armylist.RoleElites,
		}).
		Return(&roster.ChangeLogisticalRoleOutput{Snapshot: s.snapshot(), Previous: &armylist.Detachment{ID: "det-1"}}, nil)
	s.service.EXPECT().
		RemoveLogisticalRole(gomock.Any(), &roster.RemoveLogisticalRoleInput{
			ListID:       "list-1",
			DetachmentID: "det-1",
			TriggeredBy:  "unit-1",
		}).
		Return(&roster.RemoveLogisticalRoleOutput{Snapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPut, "/v1/lists/list-1/detachments/det-1/logistical-roles/unit-1", `{"role":"Elites"}`)
	s.Equal(http.StatusOK, rec.Code)
	var changed struct {
		Previous *armylist.Detachment `json:"previous"`
	}
	s.decode(rec, &changed)
	s.Equal("det-1", changed.Previous.ID)

	rec = s.do(http.MethodDelete, "/v1/lists/list-1/detachments/det-1/logistical-roles/unit-1", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRestoreDetachmentRouteIsNotAnID() {
	det := &armylist.Detachment{ID: "det-2", Type: armylist.DetachmentTypeApex}
	s.service.EXPECT().
		RestoreDetachment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roster.RestoreDetachmentInput) (*roster.RestoreDetachmentOutput, error) {
			s.Equal("list-1", input.ListID)
			s.Equal(det.ID, input.Detachment.ID)
			return &roster.RestoreDetachmentOutput{Snapshot: s.snapshot()}, nil
		})

	rec := s.do(http.MethodPost, "/v1/lists/list-1/detachments/restore", `{"detachment":{"id":"det-2","type":"Apex"}}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateSettingsPending() {
	s.service.EXPECT().
		UpdateSettings(gomock.Any(), &roster.UpdateSettingsInput{
			ListID: "list-1",
			Settings: engine.ListSettings{
				Name:        "Renamed",
				Army:        testutils.TestArmy,
				Faction:     "World Eaters",
				Allegiance:  "Traitor",
				PointsLimit: 2000,
			},
		}).
		Return(&roster.UpdateSettingsOutput{
			Status:       engine.SettingsPendingConfirmation,
			InvalidUnits: []engine.InvalidUnit{{UnitID: "unit-3", UnitName: "Test Deathwing"}},
		}, nil)

	rec := s.do(http.MethodPut, "/v1/lists/list-1/settings",
		`{"name":"Renamed","army":"Legiones Astartes","faction":"World Eaters","allegiance":"Traitor","points_limit":2000}`)

	s.Equal(http.StatusAccepted, rec.Code)
	var body struct {
		Status       engine.SettingsStatus `json:"status"`
		InvalidUnits []engine.InvalidUnit  `json:"invalid_units"`
		Snapshot     *roster.Snapshot      `json:"snapshot"`
	}
	s.decode(rec, &body)
	s.Equal(engine.SettingsPendingConfirmation, body.Status)
	s.Len(body.InvalidUnits, 1)
	s.Nil(body.Snapshot)
}

func (s *HandlerTestSuite) TestCancelSettings() {
	s.service.EXPECT().
		CancelSettings(gomock.Any(), &roster.CancelSettingsInput{ListID: "list-1"}).
		Return(&roster.CancelSettingsOutput{Discarded: true}, nil)

	rec := s.do(http.MethodDelete, "/v1/lists/list-1/settings/pending", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"discarded":true}`, rec.Body.String())
}

func (s *HandlerTestSuite) exportRoster() *export.Roster {
	return &export.Roster{
		ListID:      "list-1",
		Name:        "Test Crusade",
		Army:        testutils.TestArmy,
		Faction:     testutils.TestFaction,
		Allegiance:  testutils.TestAllegiance,
		PointsLimit: 1500,
		TotalPoints: 1250,
		Valid:       true,
		Detachments: []export.Detachment{},
		Warnings:    []string{},
	}
}

func (s *HandlerTestSuite) TestExportList() {
	s.Run("json by default", func() {
		s.service.EXPECT().
			ExportList(gomock.Any(), &roster.ExportListInput{ListID: "list-1"}).
			Return(&roster.ExportListOutput{Roster: s.exportRoster()}, nil)

		rec := s.do(http.MethodGet, "/v1/lists/list-1/export", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/json", rec.Header().Get("Content-Type"))

		var body export.Roster
		s.decode(rec, &body)
		s.Equal(1250, body.TotalPoints)
	})

	s.Run("localized text", func() {
		s.service.EXPECT().
			ExportList(gomock.Any(), &roster.ExportListInput{ListID: "list-1"}).
			Return(&roster.ExportListOutput{Roster: s.exportRoster()}, nil)

		rec := s.do(http.MethodGet, "/v1/lists/list-1/export?format=text&lang=de", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/plain")
		s.Contains(rec.Body.String(), "Total Points: 1.250 / 1.500 pts")
	})

	s.Run("unknown format", func() {
		rec := s.do(http.MethodGet, "/v1/lists/list-1/export?format=pdf", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestCatalogRoutes() {
	s.service.EXPECT().
		ListUnitTemplates(gomock.Any(), &roster.ListUnitTemplatesInput{ListID: "list-1", Role: armylist.RoleElites}).
		Return(&roster.ListUnitTemplatesOutput{
			Templates: []*armylist.UnitTemplate{testutils.VeteransTemplate()},
		}, nil)
	s.service.EXPECT().
		GetCatalogSettings(gomock.Any(), &roster.GetCatalogSettingsInput{}).
		Return(&roster.GetCatalogSettingsOutput{Settings: testutils.TestSettings()}, nil)

	rec := s.do(http.MethodGet, "/v1/lists/list-1/unit-templates?role=Elites", "")
	s.Equal(http.StatusOK, rec.Code)
	var units struct {
		Templates []*armylist.UnitTemplate `json:"templates"`
	}
	s.decode(rec, &units)
	s.Require().Len(units.Templates, 1)
	s.Equal(testutils.TestVeteransID, units.Templates[0].ID)

	rec = s.do(http.MethodGet, "/v1/catalog/settings", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"logistical_roles"`)
}

func (s *HandlerTestSuite) TestWatchNotRegisteredWithoutHub() {
	rec := s.do(http.MethodGet, "/v1/lists/list-1/watch", "")
	s.Equal(http.StatusNotFound, rec.Code)
}
