package daystart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid day start request")

// ErrStaleDay is returned when the requested day is behind the farm's day.
var ErrStaleDay = fmt.Errorf("%w: day is before the farm's current day", ErrInvalidRequest)

// UseCase handles the "day started" event for one farm.
type UseCase struct {
	TxManager ports.TxManager
	Farms     ports.FarmRepository
	Records   ports.BowlRecordRepository
	Events    ports.EventRepository
	Settings  ports.SettingsStore
	Metrics   ports.DayStartMetrics
	Evaluator watering.Evaluator
	Now       func() time.Time

	// Serial keeps at most one day start in flight. Optional.
	Serial *sync.Mutex
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" || req.Day < 1 || req.Day > world.MaxDay {
		return Response{}, ErrInvalidRequest
	}
	if u.Serial != nil {
		u.Serial.Lock()
		defer u.Serial.Unlock()
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	cfg, err := u.Settings.Load(ctx)
	if err != nil {
		u.recordFailure()
		return Response{}, err
	}

	var result watering.Result
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snapshot, err := u.Farms.Get(txCtx, req.FarmID)
		if err != nil {
			return err
		}
		if req.Day < snapshot.Day {
			return ErrStaleDay
		}
		snapshot.Day = req.Day

		records, err := u.Records.ListByFarm(txCtx, req.FarmID)
		if err != nil {
			return err
		}

		result = u.Evaluator.Evaluate(snapshot, cfg, records)

		for _, o := range result.Changed() {
			if err := u.Farms.SetWatered(txCtx, req.FarmID, o.BowlID, o.Filled); err != nil {
				return err
			}
		}
		if err := u.Records.Upsert(txCtx, req.FarmID, result.Records); err != nil {
			return err
		}
		if err := u.Farms.SetDay(txCtx, req.FarmID, req.Day); err != nil {
			return err
		}
		return u.Events.Append(txCtx, req.FarmID, []watering.DomainEvent{dayStartedEvent(req.FarmID, snapshot.Weather, result, nowFn())})
	})
	if err != nil {
		u.recordFailure()
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordEvaluation(result)
	}
	hlog.CtxInfof(ctx, "day start farm=%s day=%d skipped=%v filled=%d/%d", req.FarmID, req.Day, result.Skipped, result.FilledCount(), len(result.Outcomes))

	return Response{
		FarmID:   req.FarmID,
		Day:      req.Day,
		Skipped:  result.Skipped,
		Filled:   result.FilledCount(),
		Outcomes: result.Outcomes,
	}, nil
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}
