package scoring

import (
	"fmt"
	"strings"

	"mockmate/interview/internal/models"
)

// Risk heuristic thresholds.
const (
	decayMainQualityMin      = 7
	decayFollowUpQualityMax  = 3.0
	instantCodingThresholdMs = 3000
	vocabularyGapChars       = 2.5
	vocabularyMinSpokenWords = 10
	vocabularyMinJustWords   = 5
	mismatchJustQualityMax   = 3
)

// DetectRiskFlags runs the independent authenticity heuristics over a
// session. Flags are additive; one session can trip several.
func DetectRiskFlags(session *models.Session) []models.RiskFlag {
	flags := []models.RiskFlag{}

	flags = append(flags, confidenceDecayFlags(session)...)
	flags = append(flags, codingBehaviorFlags(session)...)
	flags = append(flags, vocabularyJumpFlags(session)...)
	flags = append(flags, mcqMismatchFlags(session)...)

	return flags
}

// confidenceDecayFlags: a strong main answer whose follow-ups collapse.
func confidenceDecayFlags(session *models.Session) []models.RiskFlag {
	var flags []models.RiskFlag

	for i, slot := range session.Slots {
		if slot.Type != models.SlotSpoken || slot.Spoken == nil || slot.Spoken.Evaluation == nil {
			continue
		}
		main := slot.Spoken.Evaluation.Quality
		if main < decayMainQualityMin {
			continue
		}

		var sum, count float64
		for _, fu := range slot.Spoken.FollowUps {
			if fu.Evaluation != nil {
				sum += float64(fu.Evaluation.Quality)
				count++
			}
		}
		if count == 0 {
			continue
		}
		if mean := sum / count; mean <= decayFollowUpQualityMax {
			flags = append(flags, models.RiskFlag{
				Type:     models.RiskConfidenceDecay,
				Severity: models.SeverityWarning,
				Label:    "Confidence decay",
				Detail: fmt.Sprintf("Question %d scored %d but follow-up answers averaged %.1f, suggesting the first answer may have been rehearsed.",
					i+1, main, mean),
			})
		}
	}

	return flags
}

// codingBehaviorFlags: paste signals and suspiciously fast typing starts.
func codingBehaviorFlags(session *models.Session) []models.RiskFlag {
	var flags []models.RiskFlag

	for i, slot := range session.Slots {
		if slot.Type != models.SlotCoding || slot.Coding == nil || slot.Coding.Behavior == nil {
			continue
		}
		behavior := slot.Coding.Behavior

		if behavior.PasteCount > 0 {
			flags = append(flags, models.RiskFlag{
				Type:     models.RiskPasteDetected,
				Severity: models.SeverityDanger,
				Label:    "Paste detected",
				Detail: fmt.Sprintf("%d paste event(s) recorded while solving question %d.",
					behavior.PasteCount, i+1),
			})
		}

		if behavior.TimeToFirstKeystrokeMs < instantCodingThresholdMs {
			flags = append(flags, models.RiskFlag{
				Type:     models.RiskInstantCoding,
				Severity: models.SeverityDanger,
				Label:    "Instant coding",
				Detail: fmt.Sprintf("Typing began %dms after the problem was shown on question %d, before it could plausibly be read.",
					behavior.TimeToFirstKeystrokeMs, i+1),
			})
		}
	}

	return flags
}

// vocabularyJumpFlags: a register shift between written justifications and
// spoken answers, measured crudely by mean word length.
func vocabularyJumpFlags(session *models.Session) []models.RiskFlag {
	var spokenWords, justWords []string

	for _, slot := range session.Slots {
		switch slot.Type {
		case models.SlotSpoken:
			if slot.Spoken == nil || slot.Spoken.Skipped {
				continue
			}
			spokenWords = append(spokenWords, strings.Fields(slot.Spoken.Answer)...)
			for _, fu := range slot.Spoken.FollowUps {
				spokenWords = append(spokenWords, strings.Fields(fu.Answer)...)
			}
		case models.SlotMCQ:
			if slot.MCQ != nil {
				justWords = append(justWords, strings.Fields(slot.MCQ.Justification)...)
			}
		}
	}

	if len(spokenWords) < vocabularyMinSpokenWords || len(justWords) < vocabularyMinJustWords {
		return nil
	}

	gap := meanWordLength(justWords) - meanWordLength(spokenWords)
	if gap <= vocabularyGapChars {
		return nil
	}

	return []models.RiskFlag{{
		Type:     models.RiskVocabularyJump,
		Severity: models.SeverityWarning,
		Label:    "Vocabulary jump",
		Detail: fmt.Sprintf("Written justifications use words %.1f characters longer on average than spoken answers, a possible register shift.",
			gap),
	}}
}

// mcqMismatchFlags: a correct pick the candidate cannot explain.
func mcqMismatchFlags(session *models.Session) []models.RiskFlag {
	var flags []models.RiskFlag

	for i, slot := range session.Slots {
		if slot.Type != models.SlotMCQ || slot.MCQ == nil {
			continue
		}
		mcq := slot.MCQ
		if mcq.IsCorrect && mcq.JustificationEval != nil && mcq.JustificationEval.Quality <= mismatchJustQualityMax {
			flags = append(flags, models.RiskFlag{
				Type:     models.RiskMCQSpokenMismatch,
				Severity: models.SeverityWarning,
				Label:    "Correct answer, weak reasoning",
				Detail: fmt.Sprintf("Question %d was answered correctly but the justification scored %d/10.",
					i+1, mcq.JustificationEval.Quality),
			})
		}
	}

	return flags
}

func meanWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}
