package impl

import (
	"context"
	"log/slog"
	"sync"

	"chirpmap/config"
	deliverycontext "chirpmap/internal/delivery/context"
	"chirpmap/internal/domain/entity"
	domainerrors "chirpmap/internal/domain/errors"
	"chirpmap/internal/domain/service"
	"chirpmap/internal/usecase"
)

const noActiveSlot = -1

// sessionContext is the process-wide state every component works against.
type sessionContext struct {
	store       usecase.SelectionUsecase
	controllers []usecase.SuggestionUsecase // parallel to the store's slots
	radius      entity.SearchRadius
	activeSlot  int
	revision    uint64
}

type locationSyncService struct {
	newController usecase.SuggestionControllerFactory
	resolver      usecase.ReverseGeocodeUsecase
	viewport      usecase.ViewportUsecase
	sinks         []service.FlyToSink
	logger        *slog.Logger

	mu      sync.Mutex
	session *sessionContext
}

// NewLocationSyncService creates the coordinator with a single empty slot and the configured radius
func NewLocationSyncService(
	newController usecase.SuggestionControllerFactory,
	resolver usecase.ReverseGeocodeUsecase,
	viewport usecase.ViewportUsecase,
	sinks []service.FlyToSink,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationSyncUsecase {
	radius := entity.DefaultRadius
	if cfg != nil && cfg.Viewport != nil {
		if parsed, err := entity.ParseSearchRadius(cfg.Viewport.DefaultRadius); err == nil {
			radius = parsed
		} else if cfg.Viewport.DefaultRadius != "" {
			logger.Warn("Ignoring configured default radius", slog.String("radius", cfg.Viewport.DefaultRadius))
		}
	}

	return &locationSyncService{
		newController: newController,
		resolver:      resolver,
		viewport:      viewport,
		sinks:         sinks,
		logger:        logger,
		session: &sessionContext{
			store:       NewSelectionStore(),
			controllers: []usecase.SuggestionUsecase{newController()},
			radius:      radius,
			activeSlot:  noActiveSlot,
		},
	}
}

func (srv *locationSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationSyncService) State(ctx context.Context) *usecase.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state := &usecase.SessionState{
		Slots:      srv.session.store.Slots(),
		Radius:     srv.session.radius,
		Viewport:   srv.targetLocked(),
		CanCompare: srv.session.store.CanCompare(),
		Revision:   srv.session.revision,
	}
	if srv.session.activeSlot != noActiveSlot {
		active := srv.session.activeSlot
		state.ActiveSlot = &active
	}

	return state
}

func (srv *locationSyncService) AddSlot(ctx context.Context) (int, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	index, err := srv.session.store.AddSlot()
	if err != nil {
		srv.log(ctx).Info("Slot capacity reached", slog.Int("slots", srv.session.store.Len()))

		return -1, err
	}

	srv.session.controllers = append(srv.session.controllers, srv.newController())
	srv.log(ctx).Info("Slot added", slog.Int("slot", index))

	return index, nil
}

func (srv *locationSyncService) RemoveSlot(ctx context.Context, index int) {
	srv.mu.Lock()

	before := srv.targetLocked()
	if !srv.session.store.RemoveSlot(index) {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Ignoring slot removal", slog.Int("slot", index))

		return
	}

	srv.session.controllers[index].Close()
	srv.session.controllers = append(srv.session.controllers[:index], srv.session.controllers[index+1:]...)

	switch {
	case srv.session.activeSlot == index:
		srv.session.activeSlot = srv.firstResolvedLocked()
	case srv.session.activeSlot > index:
		srv.session.activeSlot--
	}

	var instruction *entity.FlyToInstruction
	if after := srv.targetLocked(); after != nil && !sameTarget(before, after) {
		instruction = srv.nextInstructionLocked(ctx, after)
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Slot removed", slog.Int("slot", index))
	srv.publish(ctx, instruction)
}

func (srv *locationSyncService) TypeQuery(ctx context.Context, index int, text string) (*entity.LocationSlot, error) {
	srv.mu.Lock()

	current, ok := srv.session.store.Slot(index)
	if !ok {
		srv.mu.Unlock()

		return nil, slotNotFound(index)
	}
	if current.Query == text {
		srv.mu.Unlock()

		return &current, nil
	}

	before := srv.targetLocked()
	if err := srv.session.store.SetSlotQuery(index, text); err != nil {
		srv.mu.Unlock()

		return nil, err
	}

	slot, _ := srv.session.store.Slot(index)

	var instruction *entity.FlyToInstruction
	if current.IsResolved() && !slot.IsResolved() {
		srv.log(ctx).Debug("Selection invalidated by edit", slog.Int("slot", index))
		if srv.session.activeSlot == index {
			srv.session.activeSlot = srv.firstResolvedLocked()
		}
		if after := srv.targetLocked(); after != nil && !sameTarget(before, after) {
			instruction = srv.nextInstructionLocked(ctx, after)
		}
	}

	srv.session.controllers[index].SubmitQuery(ctx, text)
	srv.mu.Unlock()

	srv.publish(ctx, instruction)

	return &slot, nil
}

func (srv *locationSyncService) Suggestions(ctx context.Context, index int) (*usecase.SuggestionSnapshot, error) {
	controller, err := srv.controller(index)
	if err != nil {
		return nil, err
	}

	snapshot := controller.Snapshot()

	return &snapshot, nil
}

func (srv *locationSyncService) SelectCandidate(ctx context.Context, index int, candidateID string) (*entity.LocationSlot, error) {
	controller, err := srv.controller(index)
	if err != nil {
		return nil, err
	}

	var picked *entity.LocationCandidate
	for _, candidate := range controller.CurrentSuggestions() {
		if candidate.ID == candidateID {
			picked = &candidate
			break
		}
	}
	if picked == nil {
		return nil, domainerrors.ErrCandidateNotFound.WithDetails(candidateID)
	}

	slot, instruction, err := srv.applySelection(ctx, index, *picked)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Candidate selected",
		slog.Int("slot", index),
		slog.String("candidate_id", picked.ID),
		slog.Bool("enriched", picked.Position.IsEnriched()),
	)
	srv.publish(ctx, instruction)

	return slot, nil
}

// ResolveMapClick runs outside the lock; whichever resolution completes last owns slot 0.
func (srv *locationSyncService) ResolveMapClick(ctx context.Context, lng, lat float64) (*usecase.MapClickResult, error) {
	if !entity.NewCoordinates(lng, lat).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	candidate := srv.resolver.Resolve(ctx, lng, lat)
	if candidate == nil {
		return &usecase.MapClickResult{Resolved: false}, nil
	}

	slot, instruction, err := srv.applySelection(ctx, 0, *candidate)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Map click resolved", slog.String("name", candidate.Name))
	srv.publish(ctx, instruction)

	result := &usecase.MapClickResult{
		Resolved:  true,
		Candidate: candidate,
		Slot:      slot,
	}
	if instruction != nil {
		result.Viewport = &instruction.Target
	}

	return result, nil
}

func (srv *locationSyncService) SetRadius(ctx context.Context, radius entity.SearchRadius) (*entity.ViewportTarget, error) {
	if !radius.IsValid() {
		return nil, domainerrors.ErrInvalidRadius.WithDetails(radius.String())
	}

	srv.mu.Lock()
	srv.session.radius = radius
	target := srv.targetLocked()

	var instruction *entity.FlyToInstruction
	if target != nil {
		instruction = srv.nextInstructionLocked(ctx, target)
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Search radius changed", slog.String("radius", radius.String()))
	srv.publish(ctx, instruction)

	return target, nil
}

func (srv *locationSyncService) Radius() entity.SearchRadius {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.session.radius
}

func (srv *locationSyncService) Viewport(ctx context.Context) *entity.ViewportTarget {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.targetLocked()
}

func (srv *locationSyncService) Compare(ctx context.Context) *usecase.Comparison {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return &usecase.Comparison{
		CanCompare: srv.session.store.CanCompare(),
		Selections: srv.session.store.ActiveSelections(),
	}
}

func (srv *locationSyncService) Close() {
	srv.mu.Lock()
	controllers := append([]usecase.SuggestionUsecase(nil), srv.session.controllers...)
	srv.mu.Unlock()

	for _, controller := range controllers {
		controller.Close()
		controller.Wait()
	}
}

func (srv *locationSyncService) applySelection(ctx context.Context, index int, candidate entity.LocationCandidate) (*entity.LocationSlot, *entity.FlyToInstruction, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.session.store.SetSlotSelection(index, candidate); err != nil {
		return nil, nil, err
	}
	srv.session.activeSlot = index

	slot, _ := srv.session.store.Slot(index)

	var instruction *entity.FlyToInstruction
	if target := srv.targetLocked(); target != nil {
		instruction = srv.nextInstructionLocked(ctx, target)
	}

	return &slot, instruction, nil
}

func (srv *locationSyncService) controller(index int) (usecase.SuggestionUsecase, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.session.controllers) {
		return nil, slotNotFound(index)
	}

	return srv.session.controllers[index], nil
}

func (srv *locationSyncService) targetLocked() *entity.ViewportTarget {
	if srv.session.activeSlot == noActiveSlot {
		return nil
	}

	slot, ok := srv.session.store.Slot(srv.session.activeSlot)
	if !ok {
		return nil
	}

	return srv.viewport.ComputeTarget(slot.Selection, srv.session.radius)
}

func (srv *locationSyncService) firstResolvedLocked() int {
	for _, slot := range srv.session.store.Slots() {
		if slot.IsResolved() {
			return slot.Index
		}
	}

	return noActiveSlot
}

func (srv *locationSyncService) nextInstructionLocked(ctx context.Context, target *entity.ViewportTarget) *entity.FlyToInstruction {
	srv.session.revision++

	return &entity.FlyToInstruction{
		Revision:  srv.session.revision,
		SlotIndex: srv.session.activeSlot,
		Target:    *target,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
}

// publish fans the instruction out to every sink. Sink failures are logged and dropped.
func (srv *locationSyncService) publish(ctx context.Context, instruction *entity.FlyToInstruction) {
	if instruction == nil {
		return
	}

	for _, sink := range srv.sinks {
		if err := sink.FlyTo(ctx, instruction); err != nil {
			srv.log(ctx).Warn("Failed to deliver fly-to instruction",
				slog.Uint64("revision", instruction.Revision),
				slog.Any("error", err),
			)
		}
	}
}

func sameTarget(a, b *entity.ViewportTarget) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Center == b.Center && a.Zoom == b.Zoom
}
