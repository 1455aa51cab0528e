package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
	"adkit/internal/core/session"
)

// WizardUseCase implements port.WizardUseCase. It validates user input,
// sequences the wizard steps and runs the content generation, keeping all
// state in the session stores provided by the repository.
type WizardUseCase struct {
	sessions  port.SessionRepository
	generator port.ContentGenerator
	archive   port.KitArchive
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewWizardUseCase wires the use case to its outbound ports.
func NewWizardUseCase(sessions port.SessionRepository, generator port.ContentGenerator, archive port.KitArchive, logger *slog.Logger) *WizardUseCase {
	return &WizardUseCase{
		sessions:  sessions,
		generator: generator,
		archive:   archive,
		logger:    logger,
		tracer:    otel.Tracer("adkit/usecase"),
	}
}

var _ port.WizardUseCase = (*WizardUseCase)(nil)

func (u *WizardUseCase) CreateSession(ctx context.Context) (*port.View, error) {
	id, st, err := u.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	u.logger.Info("session created", slog.String("session_id", id.String()))
	return u.currentView(id, st.Snapshot()), nil
}

func (u *WizardUseCase) View(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.currentView(id, st.Snapshot()), nil
}

func (u *WizardUseCase) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return u.sessions.Delete(ctx, id)
}

func (u *WizardUseCase) Reset(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Reset()
	u.logger.Debug("session reset", slog.String("session_id", id.String()))
	return u.currentView(id, st.Snapshot()), nil
}

func (u *WizardUseCase) Start(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := st.SetStep(func(sess domain.Session) (domain.Step, error) {
		if sess.Step != domain.StepEntry || !domain.CanTransition(sess.Step, domain.StepForm) {
			return sess.Step, domain.ErrInvalidTransition
		}
		return domain.StepForm, nil
	})
	if err != nil {
		return nil, err
	}
	return u.currentView(id, s), nil
}

func (u *WizardUseCase) Back(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := st.Step()
	prev, ok := domain.PreviousStep(cur)
	if !ok || !domain.CanTransition(cur, prev) {
		return nil, domain.ErrInvalidTransition
	}
	return u.enter(id, st, prev), nil
}

func (u *WizardUseCase) Navigate(ctx context.Context, id uuid.UUID, step domain.Step) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := u.enter(id, st, step)
	if v.Redirected {
		u.logger.Debug("navigation redirected",
			slog.String("session_id", id.String()),
			slog.String("requested", step.String()),
			slog.String("landed", v.Step.String()),
		)
	}
	return v, nil
}

// enter moves the session to target, or to wherever the entry guard of
// target sends it. Entering the entry step resets the campaign.
func (u *WizardUseCase) enter(id uuid.UUID, st *session.Store, target domain.Step) *port.View {
	if target == domain.StepEntry {
		st.Reset()
		return u.currentView(id, st.Snapshot())
	}
	var g domain.Guard
	s, _ := st.SetStep(func(sess domain.Session) (domain.Step, error) {
		g = domain.EntryGuard(target, sess)
		return g.Step, nil
	})
	return u.view(id, s, g)
}

func (u *WizardUseCase) UpdateForm(ctx context.Context, id uuid.UUID, patch port.FormPatch) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := st.SetFormInput(func(in domain.FormInput) (domain.FormInput, error) {
		next := patch.Apply(in)
		return next, next.ValidateFields()
	})
	if err != nil {
		u.logger.Debug("form update rejected", slog.String("session_id", id.String()), slog.Any("error", err))
		return nil, err
	}
	return u.currentView(id, s), nil
}

func (u *WizardUseCase) ToggleTone(ctx context.Context, id uuid.UUID, tone domain.Tone) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := st.SetFormInput(func(in domain.FormInput) (domain.FormInput, error) {
		tones, err := in.Tones.Toggle(tone)
		if err != nil {
			return in, err
		}
		in.Tones = tones
		return in, nil
	})
	if err != nil {
		return nil, err
	}
	return u.currentView(id, s), nil
}

func (u *WizardUseCase) SelectImageFile(ctx context.Context, id uuid.UUID, img domain.ImageRef) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateImage(img.ContentType, img.Size); err != nil {
		u.logger.Debug("image rejected",
			slog.String("session_id", id.String()),
			slog.String("content_type", img.ContentType),
			slog.Int64("size", img.Size),
		)
		return nil, err
	}
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	s, err := st.SetFormInput(func(in domain.FormInput) (domain.FormInput, error) {
		in.Image = &img
		return in, nil
	})
	if err != nil {
		return nil, err
	}
	return u.currentView(id, s), nil
}

// Submit validates the form and runs the generation. The generation is
// detached from ctx cancellation: once issued it runs to completion. The
// loading flag is held for the duration of the call and released on every
// path; options and tip are only written after a complete response.
func (u *WizardUseCase) Submit(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := st.Snapshot()
	if !domain.CanTransition(snap.Step, domain.StepSelection) || snap.Step != domain.StepForm {
		return nil, domain.ErrInvalidTransition
	}
	if err = snap.Form.ValidateSubmission(); err != nil {
		u.logger.Debug("submission rejected", slog.String("session_id", id.String()), slog.Any("error", err))
		return nil, err
	}

	token, ok := st.BeginLoading()
	if !ok {
		return nil, domain.ErrGenerationInProgress
	}
	defer st.EndLoading(token)

	resp, err := u.generate(context.WithoutCancel(ctx), id, snap.Form)
	if err != nil {
		u.logger.Error("generation failed", slog.String("session_id", id.String()), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
	}

	if !st.ApplyGeneration(token, resp.Options(), resp.AudienceTip) {
		u.logger.Info("generation discarded after reset", slog.String("session_id", id.String()))
		return u.currentView(id, st.Snapshot()), nil
	}
	u.logger.Info("campaign generated",
		slog.String("session_id", id.String()),
		slog.Int("copies", len(resp.Copies)),
		slog.Int("images", len(resp.Images)),
	)
	return u.currentView(id, st.Snapshot()), nil
}

func (u *WizardUseCase) generate(ctx context.Context, id uuid.UUID, in domain.FormInput) (*port.GenerateResp, error) {
	ctx, span := u.tracer.Start(ctx, "generator.generate", trace.WithAttributes(
		attribute.String("session.id", id.String()),
		attribute.String("campaign.objective", in.Objective.Label()),
		attribute.String("campaign.language", in.Language.Tag().String()),
		attribute.Int("campaign.budget", in.Budget),
		attribute.Int("campaign.tones", len(in.Tones)),
	))
	defer span.End()

	resp, err := u.generator.Generate(ctx, in)
	if err == nil && (resp == nil || resp.Options().Empty()) {
		err = errors.New("generation returned no options")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return resp, nil
}

// SelectCopy picks a copy by id; unknown ids leave the selection as it was.
func (u *WizardUseCase) SelectCopy(ctx context.Context, id uuid.UUID, copyID string) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.SelectCopy(copyID) {
		u.logger.Debug("unknown copy", slog.String("session_id", id.String()), slog.String("copy_id", copyID))
	}
	return u.currentView(id, st.Snapshot()), nil
}

// SelectImage picks an image by id; unknown ids leave the selection as it
// was.
func (u *WizardUseCase) SelectImage(ctx context.Context, id uuid.UUID, imageID string) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.SelectImage(imageID) {
		u.logger.Debug("unknown image", slog.String("session_id", id.String()), slog.String("image_id", imageID))
	}
	return u.currentView(id, st.Snapshot()), nil
}

func (u *WizardUseCase) Continue(ctx context.Context, id uuid.UUID) (*port.View, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := st.SetStep(func(sess domain.Session) (domain.Step, error) {
		if !domain.CanTransition(sess.Step, domain.StepKit) {
			return sess.Step, domain.ErrInvalidTransition
		}
		if !sess.Selected.Complete() {
			return sess.Step, domain.ErrIncompleteSelection
		}
		return domain.StepKit, nil
	})
	if err != nil {
		return nil, err
	}

	if kit, ok := domain.BuildKit(s); ok {
		if err = u.archive.SaveKit(ctx, id, kit); err != nil {
			u.logger.Error("archive kit failed", slog.String("session_id", id.String()), slog.Any("error", err))
		}
	}
	return u.currentView(id, s), nil
}

func (u *WizardUseCase) Kit(ctx context.Context, id uuid.UUID) (*domain.Kit, error) {
	st, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	kit, ok := domain.BuildKit(st.Snapshot())
	if !ok {
		return nil, domain.ErrIncompleteSelection
	}
	return &kit, nil
}

func (u *WizardUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.archive.GetStats(ctx, req)
}

// currentView renders the session where it stands. Missing prerequisites
// only mark the view as pending; they never move the session.
func (u *WizardUseCase) currentView(id uuid.UUID, s domain.Session) *port.View {
	g := domain.EntryGuard(s.Step, s)
	return u.view(id, s, domain.Guard{Step: s.Step, Pending: g.Pending})
}

func (u *WizardUseCase) view(id uuid.UUID, s domain.Session, g domain.Guard) *port.View {
	v := &port.View{
		SessionID:   id,
		Step:        s.Step,
		Progress:    domain.ProgressFor(s.Step, s.Loading),
		Redirected:  g.Redirected,
		Pending:     g.Pending,
		Loading:     s.Loading,
		Form:        s.Form,
		Options:     s.Options,
		Selected:    s.Selected,
		AudienceTip: s.AudienceTip,
	}
	if s.Step == domain.StepKit {
		if kit, ok := domain.BuildKit(s); ok {
			v.Kit = &kit
		}
	}
	return v
}
