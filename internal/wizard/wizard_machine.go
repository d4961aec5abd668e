package wizard

// Step is one state of the customization flow. The wizard revisits `method`
// after logo capture as a confirmation view; selecting a method there with a
// logo already captured submits immediately instead of advancing.
type Step string

const (
	StepMethod      Step = "method"
	StepPosition    Step = "position"
	StepLogoMethod  Step = "logoMethod"
	StepAddTextLogo Step = "addTextLogo"
	StepUploadLogo  Step = "uploadLogo"

	// Terminal steps.
	StepSubmitted Step = "submitted"
	StepClosed    Step = "closed"

	// StepError is the fatal display entered when the wizard opens without a
	// bundle id. Only close is accepted from here.
	StepError Step = "error"
)

// transitions is the legal successor set per step. Close is legal from every
// non-terminal step and handled separately.
var transitions = map[Step][]Step{
	StepMethod:      {StepPosition, StepSubmitted},
	StepPosition:    {StepLogoMethod, StepMethod},
	StepLogoMethod:  {StepAddTextLogo, StepUploadLogo, StepPosition},
	StepAddTextLogo: {StepMethod, StepLogoMethod},
	StepUploadLogo:  {StepMethod, StepLogoMethod},
	StepError:       {},
	StepSubmitted:   {},
	StepClosed:      {},
}

// backSteps maps each step to its single predecessor along the path.
var backSteps = map[Step]Step{
	StepPosition:    StepMethod,
	StepLogoMethod:  StepPosition,
	StepAddTextLogo: StepLogoMethod,
	StepUploadLogo:  StepLogoMethod,
}

func canTransition(from, to Step) bool {
	if to == StepClosed {
		return !from.Terminal()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Step) Terminal() bool {
	return s == StepSubmitted || s == StepClosed
}
