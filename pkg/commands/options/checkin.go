package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/wellness"
)

// CheckinOptions carries the slider and habit flags of wellness checkin.
type CheckinOptions struct {
	Mood            int
	Energy          int
	Stress          int
	Sleep           int
	WaterIntake     int
	ExerciseMinutes int
	ScreenTime      float64
	Notes           []string
}

func AddCheckinArgs(cmd *cobra.Command, o *CheckinOptions) {
	cmd.Flags().IntVar(&o.Mood, "mood", 5, "Mood, 1-10.")
	cmd.Flags().IntVar(&o.Energy, "energy", 5, "Energy, 1-10.")
	cmd.Flags().IntVar(&o.Stress, "stress", 5, "Stress, 1-10.")
	cmd.Flags().IntVar(&o.Sleep, "sleep", 5, "Sleep quality, 1-10.")
	cmd.Flags().IntVar(&o.WaterIntake, "water", 0, "Glasses of water.")
	cmd.Flags().IntVar(&o.ExerciseMinutes, "exercise", 0, "Minutes of exercise.")
	cmd.Flags().Float64Var(&o.ScreenTime, "screen", 0, "Hours of screen time.")
	cmd.Flags().StringArrayVar(&o.Notes, "note", nil, "Free-text note.")
}

// GetEntry builds the check-in entry for the given date. Values are clamped by
// the store on write.
func (o *CheckinOptions) GetEntry(date time.Time) *wellness.Entry {
	return &wellness.Entry{
		Date:            date,
		Mood:            o.Mood,
		Energy:          o.Energy,
		Stress:          o.Stress,
		Sleep:           o.Sleep,
		WaterIntake:     o.WaterIntake,
		ExerciseMinutes: o.ExerciseMinutes,
		ScreenTime:      o.ScreenTime,
		Notes:           strings.Join(o.Notes, " "),
	}
}
