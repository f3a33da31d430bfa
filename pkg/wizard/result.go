package wizard

import "nko-content-assistant/pkg/store"

// Effect names a side effect the conversation service must execute
// after a transition. The machine itself never touches the directory,
// the backends, or the persistence store.
type Effect int

const (
	EffectNone Effect = iota
	EffectListOrgs      // render the organization list with its menu
	EffectListOrgNames  // present organization names for selection
	EffectSelectOrg     // associate the organization named by Value
	EffectSaveOrg       // create an organization from the collected answers
	EffectGenerateText  // compile and run text generation
	EffectRegenerate    // re-run text generation with the same context
	EffectRefine        // run the AI-refinement pass over the edited text
	EffectSavePost      // persist the current generated artifact
	EffectSaveEdited    // persist the operator-edited artifact
	EffectGenerateImage // run image generation with the compiled prompt
	EffectSaveImage     // persist the generated image artifact
)

// Result is the outcome of one transition: what to tell the operator
// and what side effect, if any, to run. Value carries the effect
// payload (e.g. the selected organization token).
type Result struct {
	Out    store.Outbound
	Effect Effect
	Value  string
}

func respond(out store.Outbound) Result {
	return Result{Out: out}
}

func effect(e Effect, out store.Outbound) Result {
	return Result{Out: out, Effect: e}
}
