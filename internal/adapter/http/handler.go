package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"petbowl/internal/app/daystart"
	"petbowl/internal/app/farm"
	"petbowl/internal/app/ports"
	"petbowl/internal/app/replay"
	"petbowl/internal/app/settings"
	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	FarmUC     farm.UseCase
	DayStartUC daystart.UseCase
	SettingsUC settings.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	farms := s.Group("/api/farms/:farm_id")
	farms.POST("", h.createFarm)
	farms.GET("", h.observeFarm)
	farms.PUT("/weather", h.setWeather)
	farms.POST("/buildings", h.placeBuilding)
	farms.DELETE("/buildings/:id", h.removeBuilding)
	farms.POST("/objects", h.placeObject)
	farms.DELETE("/objects/:id", h.removeObject)
	farms.POST("/day-start", h.dayStart)
	farms.GET("/history", h.history)

	s.GET("/api/settings", h.getSettings)
	s.PUT("/api/settings", h.updateSettings)
	s.POST("/api/settings/reset", h.resetSettings)

	s.GET("/ops/kpi", h.kpi)
}

type weatherRequest struct {
	Weather string `json:"weather"`
}

type buildingRequest struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type objectRequest struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Radius *float64 `json:"radius,omitempty"`
	Nozzle bool     `json:"nozzle,omitempty"`
}

type dayStartRequest struct {
	Day int `json:"day"`
}

func (h Handler) createFarm(c context.Context, ctx *app.RequestContext) {
	snap, err := h.FarmUC.Create(c, farmID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, snap)
}

func (h Handler) observeFarm(c context.Context, ctx *app.RequestContext) {
	snap, err := h.FarmUC.Observe(c, farmID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) setWeather(c context.Context, ctx *app.RequestContext) {
	var body weatherRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	w, err := h.FarmUC.SetWeather(c, farm.WeatherRequest{FarmID: farmID(ctx), Weather: body.Weather})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"weather": string(w)})
}

func (h Handler) placeBuilding(c context.Context, ctx *app.RequestContext) {
	var body buildingRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	b, err := h.FarmUC.PlaceBuilding(c, farm.PlaceBuildingRequest{
		FarmID: farmID(ctx),
		Building: world.Building{
			ID:     body.ID,
			Kind:   world.BuildingKind(strings.TrimSpace(body.Kind)),
			Anchor: world.Point{X: body.X, Y: body.Y},
			Width:  body.Width,
			Height: body.Height,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, b)
}

func (h Handler) removeBuilding(c context.Context, ctx *app.RequestContext) {
	if err := h.FarmUC.RemoveBuilding(c, farm.RemoveRequest{FarmID: farmID(ctx), ID: ctx.Param("id")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(consts.StatusNoContent)
}

func (h Handler) placeObject(c context.Context, ctx *app.RequestContext) {
	var body objectRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	o, err := h.FarmUC.PlaceObject(c, farm.PlaceObjectRequest{
		FarmID: farmID(ctx),
		Object: world.Object{
			ID:       body.ID,
			Kind:     world.ObjectKind(strings.TrimSpace(body.Kind)),
			Position: world.Point{X: body.X, Y: body.Y},
		},
		Radius: body.Radius,
		Nozzle: body.Nozzle,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, o)
}

func (h Handler) removeObject(c context.Context, ctx *app.RequestContext) {
	if err := h.FarmUC.RemoveObject(c, farm.RemoveRequest{FarmID: farmID(ctx), ID: ctx.Param("id")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(consts.StatusNoContent)
}

// dayStart fires "day started" by hand. Without a day it advances the farm by one.
func (h Handler) dayStart(c context.Context, ctx *app.RequestContext) {
	var body dayStartRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	id := farmID(ctx)
	day := body.Day
	if day == 0 {
		snap, err := h.FarmUC.Observe(c, id)
		if err != nil {
			writeError(ctx, err)
			return
		}
		day = snap.Day + 1
	}
	resp, err := h.DayStartUC.Execute(c, daystart.Request{FarmID: id, Day: day})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	fromDay, _ := strconv.Atoi(string(ctx.Query("from_day")))
	toDay, _ := strconv.Atoi(string(ctx.Query("to_day")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		FarmID:  farmID(ctx),
		Limit:   limit,
		FromDay: fromDay,
		ToDay:   toDay,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getSettings(c context.Context, ctx *app.RequestContext) {
	cfg, err := h.SettingsUC.Get(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, cfg)
}

func (h Handler) updateSettings(c context.Context, ctx *app.RequestContext) {
	var patch watering.Patch
	if err := decodeJSON(ctx, &patch); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	cfg, err := h.SettingsUC.Update(c, patch)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, cfg)
}

func (h Handler) resetSettings(c context.Context, ctx *app.RequestContext) {
	cfg, err := h.SettingsUC.Reset(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, cfg)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func farmID(ctx *app.RequestContext) string {
	return strings.TrimSpace(ctx.Param("farm_id"))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, farm.ErrInvalidRequest),
		errors.Is(err, daystart.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, world.ErrInvalidBuilding):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_building", err.Error())
	case errors.Is(err, world.ErrInvalidObject):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_object", err.Error())
	case errors.Is(err, world.ErrUnknownWeather):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_weather", err.Error())
	case errors.Is(err, watering.ErrInvalidConfig):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_config", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		hlog.Errorf("unhandled error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
