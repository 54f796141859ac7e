package intake

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const autosaveTimeout = 5 * time.Second

type flowEntry struct {
	mu        sync.Mutex
	flow      *Flow
	debouncer *Debouncer
	submitted bool

	// guarded by intakeUsecase.mu
	lastAccess time.Time
}

type intakeUsecase struct {
	VisitUsecase      contracts.VisitUsecase
	SubmissionUsecase contracts.SubmissionUsecase
	DraftStore        contracts.IntakeDraftStore
	Log               *zap.Logger
	PrivacyText       string
	AutosaveDelay     time.Duration
	IdleTTL           time.Duration
	MaxLiveFlows      int
	Sections          func() []Section
	Now               func() time.Time

	mu      sync.Mutex
	entries map[string]*flowEntry
}

var (
	intakeUsecaseInstance contracts.IntakeUsecase
	onceIntakeUsecase     sync.Once
)

func NewIntakeUsecase(
	visitUsecase contracts.VisitUsecase,
	submissionUsecase contracts.SubmissionUsecase,
	draftStore contracts.IntakeDraftStore,
	logger *zap.Logger,
	privacyText string,
	autosaveDelay time.Duration,
	idleTTL time.Duration,
	maxLiveFlows int,
) contracts.IntakeUsecase {
	onceIntakeUsecase.Do(func() {
		intakeUsecaseInstance = newIntakeUsecase(visitUsecase, submissionUsecase, draftStore, logger, privacyText, autosaveDelay, idleTTL, maxLiveFlows)
	})
	return intakeUsecaseInstance
}

func newIntakeUsecase(
	visitUsecase contracts.VisitUsecase,
	submissionUsecase contracts.SubmissionUsecase,
	draftStore contracts.IntakeDraftStore,
	logger *zap.Logger,
	privacyText string,
	autosaveDelay time.Duration,
	idleTTL time.Duration,
	maxLiveFlows int,
) *intakeUsecase {
	return &intakeUsecase{
		VisitUsecase:      visitUsecase,
		SubmissionUsecase: submissionUsecase,
		DraftStore:        draftStore,
		Log:               logger,
		PrivacyText:       privacyText,
		AutosaveDelay:     autosaveDelay,
		IdleTTL:           idleTTL,
		MaxLiveFlows:      maxLiveFlows,
		Sections:          DefaultSections,
		Now:               time.Now,
		entries:           make(map[string]*flowEntry),
	}
}

// entry returns the live flow of a visit, restoring it from the autosaved
// draft on first access. Submitted visits get a detached entry that is never
// cached and carries no answers.
func (uc *intakeUsecase) entry(ctx context.Context, visitID string) (*flowEntry, error) {
	uc.mu.Lock()
	existing, ok := uc.entries[visitID]
	if ok {
		existing.lastAccess = uc.Now()
	}
	uc.mu.Unlock()
	if ok {
		return existing, nil
	}

	visit, err := uc.VisitUsecase.GetOrCreateVisit(ctx, visitID, "")
	if err != nil {
		return nil, err
	}
	if visit.Intake != nil {
		return &flowEntry{
			flow:      NewFlow(visitID, uc.Sections()),
			debouncer: NewDebouncer(uc.AutosaveDelay),
			submitted: true,
		}, nil
	}

	draft, err := uc.DraftStore.Load(ctx, visitID)
	if err != nil {
		uc.Log.Warn("intakeUsecase.entry error loading draft, starting empty",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		draft = nil
	}

	created := &flowEntry{
		flow:      RestoreFlow(visitID, uc.Sections(), draft),
		debouncer: NewDebouncer(uc.AutosaveDelay),
	}

	uc.mu.Lock()
	if existing, ok := uc.entries[visitID]; ok {
		existing.lastAccess = uc.Now()
		uc.mu.Unlock()
		return existing, nil
	}
	created.lastAccess = uc.Now()
	uc.entries[visitID] = created
	evicted := uc.evictLocked(visitID)
	uc.mu.Unlock()

	if len(evicted) > 0 {
		uc.flush(evicted)
		uc.Log.Debug("intakeUsecase.entry evicted idle flows",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int("evicted", len(evicted)),
		)
	}
	return created, nil
}

// evictLocked drops flows idle for longer than IdleTTL, then the least
// recently used ones while more than MaxLiveFlows remain. Flows that are
// locked or submitting stay. Must be called with uc.mu held.
func (uc *intakeUsecase) evictLocked(keep string) []*flowEntry {
	now := uc.Now()
	var evicted []*flowEntry

	if uc.IdleTTL > 0 {
		for visitID, entry := range uc.entries {
			if visitID == keep || now.Sub(entry.lastAccess) <= uc.IdleTTL || !evictable(entry) {
				continue
			}
			delete(uc.entries, visitID)
			evicted = append(evicted, entry)
		}
	}

	for uc.MaxLiveFlows > 0 && len(uc.entries) > uc.MaxLiveFlows {
		oldestID := ""
		var oldest *flowEntry
		for visitID, entry := range uc.entries {
			if visitID == keep || (oldest != nil && !entry.lastAccess.Before(oldest.lastAccess)) {
				continue
			}
			if evictable(entry) {
				oldestID, oldest = visitID, entry
			}
		}
		if oldest == nil {
			break
		}
		delete(uc.entries, oldestID)
		evicted = append(evicted, oldest)
	}
	return evicted
}

func evictable(entry *flowEntry) bool {
	if !entry.mu.TryLock() {
		return false
	}
	defer entry.mu.Unlock()
	return entry.flow.Phase() != PhaseSubmitting
}

// flush writes the pending autosave of every entry now, so an evicted flow
// restores from its draft.
func (uc *intakeUsecase) flush(entries []*flowEntry) {
	for _, entry := range entries {
		if pending := entry.debouncer.Stop(); pending != nil {
			pending()
		}
	}
}

// scheduleAutosave must be called with entry.mu held.
func (uc *intakeUsecase) scheduleAutosave(visitID string, entry *flowEntry) {
	entry.debouncer.Trigger(func() {
		entry.mu.Lock()
		if entry.submitted || entry.flow.Phase() == PhaseSubmitting {
			entry.mu.Unlock()
			return
		}
		draft := entry.flow.Draft()
		entry.mu.Unlock()

		uc.saveDraft(visitID, draft)
	})
}

func (uc *intakeUsecase) saveDraft(visitID string, draft *models.IntakeDraft) {
	ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
	defer cancel()

	if err := uc.DraftStore.Save(ctx, visitID, draft); err != nil {
		uc.Log.Error("intakeUsecase.autosave error saving draft",
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return
	}
	uc.Log.Debug("intakeUsecase.autosave draft saved",
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Int(constvars.LoggingStepKey, draft.CurrentStep),
	)
}

// mutate applies fn to a live, unsubmitted flow and schedules an autosave.
func (uc *intakeUsecase) mutate(ctx context.Context, visitID string, fn func(flow *Flow) error) (*responses.IntakeView, error) {
	entry, err := uc.entry(ctx, visitID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.submitted {
		return nil, exceptions.ErrIntakeAlreadySubmitted(nil, visitID)
	}
	if err := fn(entry.flow); err != nil {
		return nil, err
	}
	uc.scheduleAutosave(visitID, entry)
	return uc.view(entry), nil
}

func (uc *intakeUsecase) GetIntake(ctx context.Context, visitID string) (*responses.IntakeView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("intakeUsecase.GetIntake called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	entry, err := uc.entry(ctx, visitID)
	if err != nil {
		uc.Log.Error("intakeUsecase.GetIntake error loading flow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return uc.view(entry), nil
}

func (uc *intakeUsecase) SetAnswer(ctx context.Context, visitID, fieldID string, request *requests.SetIntakeAnswer) (*responses.IntakeView, error) {
	uc.Log.Info("intakeUsecase.SetAnswer called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingFieldIDKey, fieldID),
	)
	return uc.mutate(ctx, visitID, func(flow *Flow) error {
		return flow.SetAnswer(fieldID, request.Value)
	})
}

func (uc *intakeUsecase) ToggleOption(ctx context.Context, visitID, fieldID string, request *requests.ToggleIntakeOption) (*responses.IntakeView, error) {
	uc.Log.Info("intakeUsecase.ToggleOption called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingFieldIDKey, fieldID),
	)
	return uc.mutate(ctx, visitID, func(flow *Flow) error {
		return flow.ToggleOption(fieldID, request.Option)
	})
}

func (uc *intakeUsecase) GoNext(ctx context.Context, visitID string) (*responses.IntakeView, error) {
	return uc.mutate(ctx, visitID, func(flow *Flow) error {
		flow.GoNext()
		return nil
	})
}

func (uc *intakeUsecase) GoPrev(ctx context.Context, visitID string) (*responses.IntakeView, error) {
	return uc.mutate(ctx, visitID, func(flow *Flow) error {
		flow.GoPrev()
		return nil
	})
}

func (uc *intakeUsecase) UpdateConsent(ctx context.Context, visitID string, request *requests.UpdateIntakeConsent) (*responses.IntakeView, error) {
	uc.Log.Info("intakeUsecase.UpdateConsent called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Bool("accepted", request.Accepted),
	)
	return uc.mutate(ctx, visitID, func(flow *Flow) error {
		flow.SetConsent(request.Accepted, request.Signature)
		return nil
	})
}

// Submit validates the gate, freezes the answers with their flags and runs
// the submission saga. A failed gate moves the flow to the offending step
// and keeps every answer.
func (uc *intakeUsecase) Submit(ctx context.Context, visitID string) (*responses.IntakeSubmitted, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("intakeUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	entry, err := uc.entry(ctx, visitID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	if entry.submitted || entry.flow.Phase() == PhaseSubmitting {
		entry.mu.Unlock()
		return nil, exceptions.ErrIntakeAlreadySubmitted(nil, visitID)
	}
	if step, err := entry.flow.ValidateSubmission(); err != nil {
		uc.scheduleAutosave(visitID, entry)
		entry.mu.Unlock()
		uc.Log.Info("intakeUsecase.Submit rejected by submission gate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Int(constvars.LoggingStepKey, step),
		)
		return nil, err
	}

	entry.flow.BeginSubmit()
	entry.debouncer.Stop()
	answers := entry.flow.Answers()
	flags := DeriveFlags(answers)
	payload := models.SubmissionPayload{
		Answers:          answers,
		Flags:            flags,
		Email:            answers.String(EmailFieldID),
		SignatureDataURL: entry.flow.Signature(),
		PrivacyText:      uc.PrivacyText,
	}
	entry.mu.Unlock()

	status, err := uc.SubmissionUsecase.Run(ctx, visitID, payload)
	if err != nil {
		entry.mu.Lock()
		entry.flow.EndSubmit()
		entry.mu.Unlock()
		uc.Log.Error("intakeUsecase.Submit error running submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	entry.mu.Lock()
	entry.submitted = true
	entry.mu.Unlock()

	uc.mu.Lock()
	delete(uc.entries, visitID)
	uc.mu.Unlock()

	if err := uc.DraftStore.Delete(ctx, visitID); err != nil {
		uc.Log.Warn("intakeUsecase.Submit error deleting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventIntakeSubmitted, requestID,
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Strings(constvars.LoggingFlagsKey, flags),
		zap.Bool("submission_completed", status.Completed),
	)
	if HasRedFlag(flags) {
		utils.LogBusinessEvent(uc.Log, constvars.BusinessEventRedFlagDetected, requestID,
			zap.String(constvars.LoggingVisitIDKey, visitID),
		)
	}

	return &responses.IntakeSubmitted{
		VisitID:    visitID,
		Flags:      flags,
		Submission: *status,
	}, nil
}

// Close flushes pending autosaves, used on shutdown.
func (uc *intakeUsecase) Close() {
	uc.mu.Lock()
	entries := make([]*flowEntry, 0, len(uc.entries))
	for _, entry := range uc.entries {
		entries = append(entries, entry)
	}
	uc.mu.Unlock()

	uc.flush(entries)
}

// view must be called with entry.mu held. A submitted intake only reports
// its status, the frozen answers are staff data.
func (uc *intakeUsecase) view(entry *flowEntry) *responses.IntakeView {
	flow := entry.flow
	if entry.submitted {
		return &responses.IntakeView{
			VisitID:   flow.VisitID(),
			Phase:     string(PhaseSubmitted),
			Submitted: true,
		}
	}

	step := flow.CurrentStep()
	view := &responses.IntakeView{
		VisitID:         flow.VisitID(),
		Step:            step,
		TotalSteps:      flow.Steps(),
		Percent:         flow.Progress(),
		Phase:           string(flow.Phase()),
		PepTalk:         flow.PepTalk(),
		Answers:         flow.Answers(),
		ConsentAccepted: flow.ConsentAccepted(),
		HasSignature:    flow.Signature() != "",
	}

	if step < flow.Steps() {
		section := flow.sections[step]
		visible := flow.VisibleFields(step)
		fields := make([]responses.IntakeField, 0, len(visible))
		for _, field := range visible {
			fields = append(fields, responses.IntakeField{
				ID:          field.ID,
				Label:       field.Label,
				Type:        string(field.Type),
				Options:     field.Options,
				Min:         field.Min,
				Max:         field.Max,
				Step:        field.Step,
				Required:    field.Required,
				Placeholder: field.Placeholder,
			})
		}
		view.Section = &responses.IntakeSection{
			ID:      section.ID,
			Title:   section.Title,
			Visible: len(fields) > 0,
			Fields:  fields,
		}
	} else {
		view.PrivacyText = uc.PrivacyText
	}
	return view
}
