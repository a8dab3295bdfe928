// Package scoring turns a completed interview session into a readiness
// report. ComputeScore is a pure function of the stored slot data; it never
// mutates the session and holds no state of its own.
package scoring

import (
	"math"

	"mockmate/interview/internal/models"
)

// Dimension weights, summing to 1.0.
const (
	WeightAnswerQuality   = 0.30
	WeightDepthStability  = 0.20
	WeightMCQAccuracy     = 0.15
	WeightCodingScore     = 0.15
	WeightBehavioralTrust = 0.10
	WeightConsistency     = 0.10
)

// Neutral defaults for dimensions with no supporting slots. These constants
// are pinned, not derived; tests assert the exact values.
const (
	neutralDepthStability     = 60.0
	noSpokenDepthStability    = 50.0
	neutralMCQAccuracy        = 50.0
	neutralCodingScore        = 50.0
	neutralConsistency        = 70.0
	correctNoJustificationPts = 25.0
)

// ComputeScore derives the terminal readiness report from a session's slot
// data. Called exactly once, at completion.
func ComputeScore(session *models.Session) *models.ScoreReport {
	breakdown := models.ScoreBreakdown{
		AnswerQuality:   round(answerQuality(session)),
		DepthStability:  round(depthStability(session)),
		MCQAccuracy:     round(mcqAccuracy(session)),
		CodingScore:     round(codingScore(session)),
		BehavioralTrust: round(behavioralTrust(session)),
		Consistency:     round(consistency(session)),
	}

	overall := round(
		WeightAnswerQuality*float64(breakdown.AnswerQuality) +
			WeightDepthStability*float64(breakdown.DepthStability) +
			WeightMCQAccuracy*float64(breakdown.MCQAccuracy) +
			WeightCodingScore*float64(breakdown.CodingScore) +
			WeightBehavioralTrust*float64(breakdown.BehavioralTrust) +
			WeightConsistency*float64(breakdown.Consistency))

	grade, label := GradeFor(overall)
	answered, skipped := countSlots(session)

	return &models.ScoreReport{
		Overall:    overall,
		Breakdown:  breakdown,
		Grade:      grade,
		GradeLabel: label,
		RiskFlags:  DetectRiskFlags(session),
		Answered:   answered,
		Skipped:    skipped,
	}
}

// answerQuality is the mean of all spoken main-answer and follow-up quality
// scores across non-skipped spoken slots, scaled to 0-100.
func answerQuality(session *models.Session) float64 {
	var sum, count float64
	hasSpoken := false

	for _, slot := range session.Slots {
		if slot.Type != models.SlotSpoken || slot.Spoken == nil {
			continue
		}
		hasSpoken = true
		if slot.Spoken.Skipped {
			continue
		}
		if eval := slot.Spoken.Evaluation; eval != nil {
			sum += float64(eval.Quality)
			count++
		}
		for _, fu := range slot.Spoken.FollowUps {
			if fu.Evaluation != nil {
				sum += float64(fu.Evaluation.Quality)
				count++
			}
		}
	}

	if !hasSpoken || count == 0 {
		return 0
	}
	return clamp(sum/count*10, 0, 100)
}

// depthStability measures how well follow-up answers hold up against the
// main answer. Each follow-up contributes a stability point based on the
// quality drop from the main answer.
func depthStability(session *models.Session) float64 {
	var sum, count float64
	hasSpoken := false

	for _, slot := range session.Slots {
		if slot.Type != models.SlotSpoken || slot.Spoken == nil {
			continue
		}
		hasSpoken = true
		if slot.Spoken.Evaluation == nil {
			continue
		}
		main := float64(slot.Spoken.Evaluation.Quality)
		for _, fu := range slot.Spoken.FollowUps {
			if fu.Evaluation == nil {
				continue
			}
			drop := main - float64(fu.Evaluation.Quality)
			sum += stabilityPoint(drop)
			count++
		}
	}

	if !hasSpoken {
		return noSpokenDepthStability
	}
	if count == 0 {
		return neutralDepthStability
	}
	return sum / count
}

func stabilityPoint(drop float64) float64 {
	switch {
	case drop <= 0:
		return 100
	case drop <= 2:
		return 70
	case drop <= 4:
		return 40
	default:
		return 10
	}
}

// mcqAccuracy awards 50 points for a correct selection and up to 50 more
// from the justification quality.
func mcqAccuracy(session *models.Session) float64 {
	var sum, count float64

	for _, slot := range session.Slots {
		if slot.Type != models.SlotMCQ || slot.MCQ == nil {
			continue
		}
		count++

		var points float64
		if slot.MCQ.IsCorrect {
			points += 50
		}
		if eval := slot.MCQ.JustificationEval; eval != nil {
			points += float64(eval.Quality) * 5
		} else if slot.MCQ.IsCorrect {
			points += correctNoJustificationPts
		}
		sum += clamp(points, 0, 100)
	}

	if count == 0 {
		return neutralMCQAccuracy
	}
	return sum / count
}

// codingScore averages code quality and logic understanding per coding slot.
func codingScore(session *models.Session) float64 {
	var sum, count float64

	for _, slot := range session.Slots {
		if slot.Type != models.SlotCoding || slot.Coding == nil {
			continue
		}
		eval := slot.Coding.Evaluation
		if eval == nil {
			continue
		}
		avg := (float64(eval.CodeQuality) + float64(eval.LogicUnderstandingScore())) / 2
		sum += clamp(avg*10, 0, 100)
		count++
	}

	if count == 0 {
		return neutralCodingScore
	}
	return sum / count
}

// behavioralTrust starts at 100 and deducts for paste signals, suspiciously
// fast coding and rapid-fire spoken answers.
func behavioralTrust(session *models.Session) float64 {
	trust := 100.0

	totalPastes := 0
	fastAnswers := 0

	for _, slot := range session.Slots {
		switch slot.Type {
		case models.SlotCoding:
			if slot.Coding == nil || slot.Coding.Behavior == nil {
				continue
			}
			behavior := slot.Coding.Behavior
			totalPastes += behavior.PasteCount
			if behavior.TimeToFirstKeystrokeMs < 3000 {
				trust -= 20
			}
			if behavior.TotalTimeMs < 30000 {
				trust -= 15
			}
		case models.SlotSpoken:
			if slot.Spoken == nil || slot.Spoken.Skipped || slot.AnsweredAt == nil {
				continue
			}
			if slot.ResponseLatency().Milliseconds() < 5000 {
				fastAnswers++
			}
		}
	}

	if totalPastes > 0 {
		trust -= math.Min(30, 15*float64(totalPastes))
	}
	if fastAnswers > 3 {
		trust -= 15
	}

	return clamp(trust, 0, 100)
}

// consistency compares mean spoken quality against MCQ accuracy, both on a
// 0-10 scale. A large gap between the two registers suggests one of them
// does not reflect the candidate's real level.
func consistency(session *models.Session) float64 {
	spokenMean, spokenOK := meanSpokenQuality(session)
	mcqMean, mcqOK := meanMCQCorrectness(session)
	if !spokenOK || !mcqOK {
		return neutralConsistency
	}

	gap := math.Abs(spokenMean - mcqMean*10)
	switch {
	case gap <= 2:
		return 100
	case gap <= 4:
		return 70
	case gap <= 6:
		return 40
	default:
		return 15
	}
}

// meanSpokenQuality returns the mean main-answer quality of non-skipped
// spoken slots on the 1-10 scale.
func meanSpokenQuality(session *models.Session) (float64, bool) {
	var sum, count float64
	for _, slot := range session.Slots {
		if slot.Type != models.SlotSpoken || slot.Spoken == nil || slot.Spoken.Skipped {
			continue
		}
		if slot.Spoken.Evaluation != nil {
			sum += float64(slot.Spoken.Evaluation.Quality)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / count, true
}

// meanMCQCorrectness returns the fraction of MCQ slots answered correctly.
func meanMCQCorrectness(session *models.Session) (float64, bool) {
	var correct, count float64
	for _, slot := range session.Slots {
		if slot.Type != models.SlotMCQ || slot.MCQ == nil {
			continue
		}
		count++
		if slot.MCQ.IsCorrect {
			correct++
		}
	}
	if count == 0 {
		return 0, false
	}
	return correct / count, true
}

func countSlots(session *models.Session) (answered, skipped int) {
	for _, slot := range session.Slots {
		if slotSkipped(slot) {
			skipped++
		} else if slot.AnsweredAt != nil {
			answered++
		}
	}
	return answered, skipped
}

func slotSkipped(slot *models.Slot) bool {
	switch slot.Type {
	case models.SlotSpoken:
		return slot.Spoken != nil && slot.Spoken.Skipped
	case models.SlotMCQ:
		return slot.MCQ != nil && slot.MCQ.Skipped
	case models.SlotCoding:
		return slot.Coding != nil && slot.Coding.Skipped
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
