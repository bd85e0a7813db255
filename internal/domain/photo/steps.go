package photo

// Step is one required shot in the guided inspection sequence.
type Step struct {
	ID          string
	Title       string
	Instruction string
	Tip         string
}

const (
	SupplementarySlots = 4
	MaxPhotos          = 10

	supplementaryPrefix = "additional-"
)

// Steps lists the required shots in capture order.
var Steps = []Step{
	{
		ID:          "overall-front",
		Title:       "Overall Front",
		Instruction: "Capture the entire rug from directly above, showing the full front/top surface",
		Tip:         "Stand back far enough to fit the whole rug in frame",
	},
	{
		ID:          "overall-back",
		Title:       "Overall Back",
		Instruction: "Flip the rug and capture the entire back surface",
		Tip:         "This helps identify construction type and hidden damage",
	},
	{
		ID:          "fringe-end-a",
		Title:       "Fringe - End A",
		Instruction: "Close-up of the fringe on one end of the rug",
		Tip:         "Show the full width of the fringe clearly",
	},
	{
		ID:          "fringe-end-b",
		Title:       "Fringe - End B",
		Instruction: "Close-up of the fringe on the opposite end",
		Tip:         "Capture any differences in condition from End A",
	},
	{
		ID:          "edge-side-a",
		Title:       "Edge/Binding - Side A",
		Instruction: "Close-up of one side edge/binding of the rug",
		Tip:         "Show the binding or selvedge condition",
	},
	{
		ID:          "edge-side-b",
		Title:       "Edge/Binding - Side B",
		Instruction: "Close-up of the opposite side edge/binding",
		Tip:         "Note any wear, loose threads, or damage",
	},
}

func stepIndex(id string) int {
	for i, s := range Steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
