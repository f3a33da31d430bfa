package wizard

import (
	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
)

// Image questionnaire and post-generation handlers.

func (m *Machine) handleImageAttach(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionImageForPost):
		s.Answers.Set(store.FieldImageAttach, "yes")
		s.Step = store.StepPostForImage
		var out store.Outbound
		out.Say(msgAskPostText)
		return respond(out)
	case selected(in, ActionImageStandalone):
		s.Answers.Set(store.FieldImageAttach, "no")
		return m.presentImageDesc(s)
	}
	var out store.Outbound
	out.Say(msgAskImageAttach)
	out.Options = store.Opts(ActionImageForPost, ActionImageStandalone)
	return respond(out)
}

func (m *Machine) handlePostForImage(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskPostText)
		return respond(out)
	}
	s.Answers.Set(store.FieldPostForImage, text)
	return m.presentImageDesc(s)
}

func (m *Machine) presentImageDesc(s *store.Session) Result {
	s.Step = store.StepImageDesc
	var out store.Outbound
	out.Say(msgAskImageDesc)
	out.Options = store.Opts(ActionSkipImageDesc)
	return respond(out)
}

func (m *Machine) handleImageDesc(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionSkipImageDesc):
		s.Answers.Skip(store.FieldImageDesc)
		r := m.presentImageStyle(s)
		r.Out.Messages = append([]string{msgImageDescSkipped}, r.Out.Messages...)
		return r
	default:
		if text, ok := freeText(in); ok {
			s.Answers.Set(store.FieldImageDesc, text)
			return m.presentImageStyle(s)
		}
	}
	return m.presentImageDesc(s)
}

func (m *Machine) presentImageStyle(s *store.Session) Result {
	s.Step = store.StepImageStyle
	var out store.Outbound
	out.Say(msgAskImageStyle)
	out.Options = store.Opts(prompt.ImageStyles...)
	return respond(out)
}

func (m *Machine) handleImageStyle(s *store.Session, in store.Inbound) Result {
	if selected(in, prompt.CustomStyle) {
		var out store.Outbound
		out.Say(msgAskCustomStyle)
		return respond(out)
	}
	if style, ok := selectedOneOf(in, prompt.ImageStyles); ok {
		s.Answers.Set(store.FieldImageStyle, style)
		return m.presentImageColors(s)
	}
	// Free text arrives after the custom-style option.
	if text, ok := freeText(in); ok {
		s.Answers.Set(store.FieldImageStyle, text)
		return m.presentImageColors(s)
	}
	return m.presentImageStyle(s)
}

func (m *Machine) presentImageColors(s *store.Session) Result {
	s.Step = store.StepImageColors
	var out store.Outbound
	out.Say(msgAskColors)
	out.Options = store.Opts(prompt.ColorSchemes...)
	return respond(out)
}

func (m *Machine) handleImageColors(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, prompt.SkipColors):
		s.Answers.Skip(store.FieldImageColors)
		r := m.PresentImagePrompt(s)
		r.Out.Messages = append([]string{msgColorsSkipped}, r.Out.Messages...)
		return r
	default:
		if scheme, ok := selectedOneOf(in, prompt.ColorSchemes); ok {
			s.Answers.Set(store.FieldImageColors, scheme)
			return m.PresentImagePrompt(s)
		}
	}
	return m.presentImageColors(s)
}

// PresentImagePrompt compiles the image request from the answers and
// shows the operator-facing rendering for approval.
func (m *Machine) PresentImagePrompt(s *store.Session) Result {
	full, display := prompt.BuildImagePrompt(s.Answers)
	s.Answers.Set(store.FieldImagePrompt, full)
	s.Answers.Set(store.FieldImageDisplay, display)
	s.Step = store.StepImagePrompt

	var out store.Outbound
	out.Say(msgImagePromptReady+"\n\n"+display, msgImagePromptNext)
	out.Options = store.Opts(ActionEditImagePrompt, ActionRunImage)
	return respond(out)
}

func (m *Machine) handleImagePrompt(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionEditImagePrompt):
		s.Step = store.StepImageEdit
		var out store.Outbound
		out.Say(msgAskImagePrompt)
		return respond(out)
	case selected(in, ActionRunImage):
		return m.startImageGeneration(s)
	}
	var out store.Outbound
	out.Say(msgImagePromptReady+"\n\n"+s.Answers.Get(store.FieldImageDisplay), msgImagePromptNext)
	out.Options = store.Opts(ActionEditImagePrompt, ActionRunImage)
	return respond(out)
}

func (m *Machine) handleImageEdit(s *store.Session, in store.Inbound) Result {
	text, ok := freeText(in)
	if !ok {
		var out store.Outbound
		out.Say(msgAskImagePrompt)
		return respond(out)
	}
	// An operator edit replaces both renderings verbatim.
	s.Answers.Set(store.FieldImagePrompt, text)
	s.Answers.Set(store.FieldImageDisplay, text)
	s.Step = store.StepImagePrompt

	var out store.Outbound
	out.Say(msgImagePromptReady+"\n\n"+text, msgImagePromptNext)
	out.Options = store.Opts(ActionEditImagePrompt, ActionRunImage)
	return respond(out)
}

func (m *Machine) startImageGeneration(s *store.Session) Result {
	s.Answers.Set(store.FieldArtifactKind, "image")
	s.Step = store.StepImageReview
	var out store.Outbound
	out.Say(msgImageWait)
	return effect(EffectGenerateImage, out)
}

// PresentImageReview positions the session at the generated-image menu.
func (m *Machine) PresentImageReview(s *store.Session) Result {
	s.Step = store.StepImageReview
	var out store.Outbound
	out.Say(msgImageActions)
	out.Options = store.Opts(ActionAnotherImage, ActionChangePrompt, ActionSaveImage)
	return respond(out)
}

func (m *Machine) handleImageReview(s *store.Session, in store.Inbound) Result {
	switch {
	case selected(in, ActionAnotherImage), selected(in, ActionRetry):
		return m.startImageGeneration(s)
	case selected(in, ActionChangePrompt), selected(in, ActionEditImagePrompt):
		s.Step = store.StepImageEdit
		var out store.Outbound
		out.Say(msgAskImagePrompt)
		return respond(out)
	case selected(in, ActionSaveImage):
		return m.requireOrgThen(s, EffectSaveImage, "image")
	case selected(in, ActionSelectOrg):
		s.Step = store.StepOrgSelectSave
		return effect(EffectListOrgNames, store.Outbound{})
	}
	return m.PresentImageReview(s)
}
