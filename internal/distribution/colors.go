package distribution

var (
	backgroundColors = []string{
		"rgba(030, 150, 000, 0.5)",
		"rgba(143, 196, 000, 0.5)",
		"rgba(255, 242, 000, 0.5)",
		"rgba(255, 121, 000, 0.5)",
		"rgba(255, 000, 000, 0.5)",
		"rgba(140, 073, 198, 0.5)",
		"rgba(073, 132, 198, 0.5)",
	}
	borderColors = []string{
		"rgba(030, 150, 000, 1)",
		"rgba(143, 196, 000, 1)",
		"rgba(255, 242, 000, 1)",
		"rgba(255, 121, 000, 1)",
		"rgba(255, 000, 000, 1)",
		"rgba(140, 073, 198, 1)",
		"rgba(073, 132, 198, 1)",
	}
)

// Colors returns background and border colors matching b.Labels().
func (b BucketSet) Colors() (background []string, border []string) {
	switch b.Kind {
	case LetterOnly:
		return backgroundColors[:5], borderColors[:5]
	case PassNoPass:
		return backgroundColors[5:], borderColors[5:]
	default:
		return backgroundColors, borderColors
	}
}
