package wizard

import (
	"strings"

	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
)

// Machine is the wizard state graph. Advance is a pure function of
// (current step, current answers, input): it mutates only the session
// it was handed and reports side effects for the caller to execute.
type Machine struct{}

func NewMachine() *Machine {
	return &Machine{}
}

// Advance applies one inbound event to the session. Menu selections
// that match no offered option leave the step unchanged and re-present
// the step's prompt. The escape phrase aborts from any step.
func (m *Machine) Advance(s *store.Session, in store.Inbound) Result {
	if m.isEscape(in) {
		s.Reset()
		return m.PresentMainMenu(s)
	}

	switch s.Step {
	case store.StepIdle:
		return m.greet(s)
	case store.StepMainMenu:
		return m.handleMainMenu(s, in)
	case store.StepOrgList:
		return m.handleOrgList(s, in)
	case store.StepOrgSelect, store.StepOrgSelectSave:
		return m.handleOrgSelect(s, in)
	case store.StepOrgName:
		return m.handleOrgName(s, in)
	case store.StepOrgDescription:
		return m.handleOrgDescription(s, in)
	case store.StepOrgExamples:
		return m.handleOrgExamples(s, in)
	case store.StepTaskType:
		return m.handleTaskType(s, in)
	case store.StepSocialNetwork:
		return m.handleSocialNetwork(s, in)
	case store.StepGoal:
		return m.handleGoal(s, in)
	case store.StepEventDate:
		return m.handleEventDate(s, in)
	case store.StepAudience:
		return m.handleAudience(s, in)
	case store.StepTone:
		return m.handleTone(s, in)
	case store.StepDetails:
		return m.handleDetails(s, in)
	case store.StepCTA:
		return m.handleCTA(s, in)
	case store.StepNuances:
		return m.handleNuances(s, in)
	case store.StepReview:
		return m.handleReview(s, in)
	case store.StepEditing:
		return m.handleEditing(s, in)
	case store.StepEditReview:
		return m.handleEditReview(s, in)
	case store.StepImageAttach:
		return m.handleImageAttach(s, in)
	case store.StepPostForImage:
		return m.handlePostForImage(s, in)
	case store.StepImageDesc:
		return m.handleImageDesc(s, in)
	case store.StepImageStyle:
		return m.handleImageStyle(s, in)
	case store.StepImageColors:
		return m.handleImageColors(s, in)
	case store.StepImagePrompt:
		return m.handleImagePrompt(s, in)
	case store.StepImageEdit:
		return m.handleImageEdit(s, in)
	case store.StepImageReview:
		return m.handleImageReview(s, in)
	}

	// Unknown step means a stale session; start over.
	s.Reset()
	return m.greet(s)
}

func (m *Machine) isEscape(in store.Inbound) bool {
	v := strings.TrimSpace(in.Value)
	return v == EscapeMainMenu || v == EscapeStart
}

// selected reports whether the input is a menu selection of the given option.
func selected(in store.Inbound, option string) bool {
	return in.Kind == store.InboundSelect && in.Value == option
}

// selectedOneOf returns the matched option from the offered set.
func selectedOneOf(in store.Inbound, options []string) (string, bool) {
	if in.Kind != store.InboundSelect {
		return "", false
	}
	for _, opt := range options {
		if in.Value == opt {
			return opt, true
		}
	}
	return "", false
}

func freeText(in store.Inbound) (string, bool) {
	if in.Kind != store.InboundText {
		return "", false
	}
	text := strings.TrimSpace(in.Value)
	if text == "" {
		return "", false
	}
	return text, true
}

// --- Entry points and shared presentations ---

func (m *Machine) greet(s *store.Session) Result {
	r := m.PresentMainMenu(s)
	r.Out.Messages = append([]string{msgGreeting}, r.Out.Messages...)
	return r
}

// PresentMainMenu positions the session at the main menu.
func (m *Machine) PresentMainMenu(s *store.Session) Result {
	s.Step = store.StepMainMenu
	var out store.Outbound
	out.Say(msgMainMenu)
	out.Options = store.Opts(ActionPickTask, ActionListOrgs, ActionCreateOrg)
	return respond(out)
}

// PresentTaskType positions the session at task selection. The
// conversation service calls this after an organization is associated.
func (m *Machine) PresentTaskType(s *store.Session) Result {
	s.Step = store.StepTaskType
	var out store.Outbound
	out.Say(msgAskTaskType)
	out.Options = store.Opts(prompt.TaskTypes...)
	return respond(out)
}

// PresentReview positions the session at the generated-text review menu.
func (m *Machine) PresentReview(s *store.Session) Result {
	s.Step = store.StepReview
	var out store.Outbound
	out.Say(msgReviewActions)
	out.Options = store.Opts(ActionEditText, ActionSaveText, ActionRegenerate)
	return respond(out)
}

// --- Main menu and organization steps ---

func (m *Machine) handleMainMenu(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionPickTask):
		r := m.PresentTaskType(s)
		r.Out.Messages = append([]string{msgPickingTask}, r.Out.Messages...)
		return r
	case selected(in, ActionListOrgs):
		s.Step = store.StepOrgList
		return effect(EffectListOrgs, store.Outbound{})
	case selected(in, ActionCreateOrg):
		return m.startOrgCreation(s)
	}
	return m.PresentMainMenu(s)
}

func (m *Machine) startOrgCreation(s *store.Session) Result {
	s.SelectedOrgID = nil
	s.Step = store.StepOrgName
	var out store.Outbound
	out.Say(msgAskOrgName)
	return respond(out)
}

func (m *Machine) handleOrgList(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionSelectOrg):
		s.Step = store.StepOrgSelect
		return effect(EffectListOrgNames, store.Outbound{})
	case selected(in, ActionCreateOrg):
		return m.startOrgCreation(s)
	case selected(in, ActionPickTask):
		r := m.PresentTaskType(s)
		r.Out.Messages = append([]string{msgPickingTask}, r.Out.Messages...)
		return r
	}
	return effect(EffectListOrgs, store.Outbound{})
}

func (m *Machine) handleOrgSelect(s *store.Session, in store.Inbound) Result {
	if in.Kind == store.InboundSelect {
		return Result{Effect: EffectSelectOrg, Value: in.Value}
	}
	return effect(EffectListOrgNames, store.Outbound{})
}

func (m *Machine) handleOrgName(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskOrgName)
		return respond(out)
	}
	s.Answers.Set(store.FieldName, text)
	s.Step = store.StepOrgDescription
	var out store.Outbound
	out.Say(msgAskOrgDescription)
	return respond(out)
}

func (m *Machine) handleOrgDescription(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskOrgDescription)
		return respond(out)
	}
	s.Answers.Set(store.FieldDescription, text)
	s.Step = store.StepOrgExamples
	var out store.Outbound
	out.Say(msgAskOrgExamples)
	out.Options = store.Opts(ActionSkipExamples)
	return respond(out)
}

func (m *Machine) handleOrgExamples(s *store.Session, in store.Inbound) Result {
	if selected(in, ActionSkipExamples) {
		s.Answers.Skip(store.FieldExamples)
		var out store.Outbound
		out.Say(msgExamplesSkipped)
		return effect(EffectSaveOrg, out)
	}
	if text, ok := freeText(in); ok {
		s.Answers.Set(store.FieldExamples, text)
		return effect(EffectSaveOrg, store.Outbound{})
	}
	var out store.Outbound
	out.Say(msgAskOrgExamples)
	out.Options = store.Opts(ActionSkipExamples)
	return respond(out)
}

// --- Task selection and text flow ---

func (m *Machine) handleTaskType(s *store.Session, in store.Inbound) Result {
	task, ok := selectedOneOf(in, prompt.TaskTypes)
	if !ok {
		return m.PresentTaskType(s)
	}
	s.Answers.Set(store.FieldTaskType, task)

	switch task {
	case prompt.TaskText:
		s.Step = store.StepSocialNetwork
		var out store.Outbound
		out.Say(msgAskNetwork)
		out.Options = store.Opts(prompt.Networks...)
		return respond(out)
	case prompt.TaskImage:
		s.Step = store.StepImageAttach
		var out store.Outbound
		out.Say(msgAskImageAttach)
		out.Options = store.Opts(ActionImageForPost, ActionImageStandalone)
		return respond(out)
	default: // content plan is a stub
		r := m.PresentMainMenu(s)
		r.Out.Messages = append([]string{msgPlanUnavailable}, r.Out.Messages...)
		return r
	}
}

func (m *Machine) handleSocialNetwork(s *store.Session, in store.Inbound) Result {
	network, ok := selectedOneOf(in, prompt.Networks)
	if !ok {
		var out store.Outbound
		out.Say(msgAskNetwork)
		out.Options = store.Opts(prompt.Networks...)
		return respond(out)
	}
	s.Answers.Set(store.FieldSocialNetwork, network)
	return m.presentGoal(s)
}

func (m *Machine) presentGoal(s *store.Session) Result {
	s.Step = store.StepGoal
	var out store.Outbound
	out.Say(msgAskGoal)
	out.Options = store.Opts(prompt.Goals...)
	return respond(out)
}

func (m *Machine) handleGoal(s *store.Session, in store.Inbound) Result {
	goal, ok := selectedOneOf(in, prompt.Goals)
	if !ok {
		return m.presentGoal(s)
	}
	s.Answers.Set(store.FieldGoal, goal)

	if prompt.GoalNeedsEventDate(goal) {
		s.Step = store.StepEventDate
		var out store.Outbound
		if goal == prompt.GoalAnnounce {
			out.Say(msgAskEventDate)
		} else {
			out.Say(msgAskPastDate)
		}
		return respond(out)
	}
	return m.presentAudience(s)
}

func (m *Machine) handleEventDate(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		if s.Answers.Get(store.FieldGoal) == prompt.GoalAnnounce {
			out.Say(msgAskEventDate)
		} else {
			out.Say(msgAskPastDate)
		}
		return respond(out)
	}
	// Raw operator text, deliberately not parsed as a calendar date.
	s.Answers.Set(store.FieldEventDate, text)
	return m.presentAudience(s)
}

func (m *Machine) presentAudience(s *store.Session) Result {
	s.Step = store.StepAudience
	var out store.Outbound
	out.Say(msgAskAudience)
	out.Options = store.Opts(prompt.Audiences...)
	return respond(out)
}

func (m *Machine) handleAudience(s *store.Session, in store.Inbound) Result {
	var confirmation string
	switch {
	case selected(in, prompt.SkipAudience):
		s.Answers.Skip(store.FieldAudience)
		confirmation = msgAudienceSkipped
	default:
		if audience, ok := selectedOneOf(in, prompt.Audiences); ok {
			s.Answers.Set(store.FieldAudience, audience)
			confirmation = "🎯 Целевая аудитория: " + audience
		} else if text, ok := freeText(in); ok {
			s.Answers.Set(store.FieldAudience, text)
			confirmation = "🎯 Целевая аудитория: " + text
		} else {
			return m.presentAudience(s)
		}
	}

	s.Step = store.StepTone
	var out store.Outbound
	out.Say(confirmation, msgAskTone)
	out.Options = store.Opts(prompt.Tones...)
	return respond(out)
}

func (m *Machine) handleTone(s *store.Session, in store.Inbound) Result {
	tone, ok := selectedOneOf(in, prompt.Tones)
	if !ok {
		var out store.Outbound
		out.Say(msgAskTone)
		out.Options = store.Opts(prompt.Tones...)
		return respond(out)
	}
	s.Answers.Set(store.FieldTone, tone)
	s.Step = store.StepDetails
	var out store.Outbound
	out.Say(msgAskDetails)
	return respond(out)
}

func (m *Machine) handleDetails(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskDetails)
		return respond(out)
	}
	s.Answers.Set(store.FieldDetails, text)
	s.Step = store.StepCTA
	var out store.Outbound
	out.Say(msgAskCTA)
	return respond(out)
}

func (m *Machine) handleCTA(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskCTA)
		return respond(out)
	}
	s.Answers.Set(store.FieldCTA, text)
	s.Step = store.StepNuances
	var out store.Outbound
	out.Say(msgAskNuances)
	return respond(out)
}

func (m *Machine) handleNuances(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskNuances)
		return respond(out)
	}
	s.Answers.Set(store.FieldNuances, text)
	s.Answers.Set(store.FieldArtifactKind, "generated")
	s.Step = store.StepReview
	var out store.Outbound
	out.Say(msgGenerating)
	return effect(EffectGenerateText, out)
}

// --- Post-result workflow ---

func (m *Machine) handleReview(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionEditText):
		s.Step = store.StepEditing
		var out store.Outbound
		out.Say(msgAskEditedText + "\n\n" + s.Answers.Get(store.FieldGeneratedText))
		return respond(out)
	case selected(in, ActionSaveText):
		return m.requireOrgThen(s, EffectSavePost, "generated")
	case selected(in, ActionRegenerate), selected(in, ActionRetry):
		s.Answers.Set(store.FieldArtifactKind, "regenerated")
		var out store.Outbound
		out.Say(msgRegenerating)
		return effect(EffectRegenerate, out)
	case selected(in, ActionSelectOrg):
		s.Step = store.StepOrgSelectSave
		return effect(EffectListOrgNames, store.Outbound{})
	}
	return m.PresentReview(s)
}

// requireOrgThen gates a save effect on an associated organization.
// Without one the artifact stays untouched and the operator is offered
// a path to associate an organization before retrying.
func (m *Machine) requireOrgThen(s *store.Session, save Effect, pending string) Result {
	if s.SelectedOrgID == nil {
		s.Answers.Set(store.FieldPendingSave, pending)
		var out store.Outbound
		out.Say(msgOrgRequired)
		out.Options = store.Opts(ActionSelectOrg, EscapeMainMenu)
		return respond(out)
	}
	return Result{Effect: save}
}

func (m *Machine) handleEditing(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskEditedText + "\n\n" + s.Answers.Get(store.FieldGeneratedText))
		return respond(out)
	}
	s.Answers.Set(store.FieldEditedText, text)
	s.Step = store.StepEditReview
	var out store.Outbound
	out.Say("Ваш отредактированный текст:\n\n"+text, msgEditedActions)
	out.Options = store.Opts(ActionRefine, ActionSaveEdited)
	return respond(out)
}

func (m *Machine) handleEditReview(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionRefine):
		s.Answers.Set(store.FieldArtifactKind, "ai_refined")
		s.Step = store.StepReview
		var out store.Outbound
		out.Say(msgRefining)
		return effect(EffectRefine, out)
	case selected(in, ActionSaveEdited):
		return m.requireOrgThen(s, EffectSaveEdited, "edited")
	case selected(in, ActionSelectOrg):
		s.Step = store.StepOrgSelectSave
		return effect(EffectListOrgNames, store.Outbound{})
	}
	var out store.Outbound
	out.Say("Ваш отредактированный текст:\n\n"+s.Answers.Get(store.FieldEditedText), msgEditedActions)
	out.Options = store.Opts(ActionRefine, ActionSaveEdited)
	return respond(out)
}
