package consultation

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage needs no language instruction in prompts.
const DefaultLanguage = "en-US"

const reportPrompt = `%sAnalyze this medical report as a specialized medical AI. Provide a detailed analysis in JSON format:

Guidelines:
1. Extract ALL symptoms mentioned, even mild ones
2. List ALL possible diseases that match the symptoms
3. Consider test results and vital signs if present
4. Recommend specialists based on symptoms and possible conditions
5. Provide a comprehensive summary of the findings
6. Include severity assessment of the overall condition

Required JSON structure:
{
    "summary": {
        "overview": "Brief overview of the case how diagnostic it and need to be reviewed by a specialist",
        "severity_assessment": "mild/moderate/severe",
        "key_findings": ["list of important findings"],
        "urgent_attention": "yes/no",
        "follow_up_timeline": "immediate/within week/routine"
    },
    "symptoms": [
        {
            "symptom": "detailed symptom",
            "severity": "mild/moderate/severe",
            "duration": "duration if mentioned",
            "related_conditions": ["possible related conditions"]
        }
    ],
    "possible_diseases": [
        {
            "disease": "disease name",
            "confidence": "high/medium/low",
            "reasoning": "brief explanation",
            "common_complications": ["possible complications"]
        }
    ],
    "recommended_doctor": {
        "primary": {
            "specialist": "main specialist needed",
            "specialty_area": "specific area of expertise",
            "urgency": "immediate/soon/routine"
        },
        "secondary": {
            "specialist": "additional specialist if needed",
            "specialty_area": "specific area of expertise",
            "urgency": "immediate/soon/routine"
        },
        "reasoning": "explanation for specialist choices"
    },
    "precautions": [
        {
            "precaution": "specific precaution",
            "importance": "critical/important/recommended",
            "duration": "how long to follow",
            "details": "additional details"
        }
    ],
    "additional_tests": [
        {
            "test": "test name",
            "purpose": "why it's needed",
            "urgency": "immediate/soon/routine"
        }
    ],
    "lifestyle_recommendations": [
        {
            "category": "diet/exercise/sleep/etc",
            "recommendation": "specific advice",
            "importance": "high/medium/low"
        }
    ]
}

Medical Report:
%s

Ensure the response is ONLY the JSON object with no additional text.
`

const precautionsPrompt = `%sAnalyze these symptoms and provide detailed precautions and recommendations in JSON format:

Required JSON structure:
{
    "initial_assessment": {
        "severity": "mild/moderate/severe",
        "immediate_action_required": true/false,
        "seek_emergency": true/false
    },
    "precautions": [
        {
            "category": "category name",
            "measures": ["detailed precautionary measures"],
            "priority": "high/medium/low"
        }
    ],
    "lifestyle_recommendations": [
        {
            "area": "area of focus",
            "suggestions": ["specific actionable suggestions"],
            "duration": "temporary/long-term"
        }
    ],
    "home_remedies": [
        {
            "remedy": "remedy name",
            "instructions": "how to apply/use",
            "caution": "any warnings or contraindications"
        }
    ],
    "when_to_seek_emergency": ["list of warning signs that require immediate medical attention"]
}

Symptoms:
%s

Ensure the response is ONLY the JSON object with no additional text.
`

func buildReportPrompt(text, lang string) string {
	return fmt.Sprintf(reportPrompt, languagePreamble(lang), text)
}

func buildPrecautionsPrompt(symptoms, lang string) string {
	return fmt.Sprintf(precautionsPrompt, languagePreamble(lang), symptoms)
}

// languagePreamble names the response language, turning BCP 47 tags such
// as "hi-IN" into English language names. Anything else is used verbatim.
func languagePreamble(lang string) string {
	if lang == "" || lang == DefaultLanguage {
		return ""
	}
	return fmt.Sprintf("Respond in %s language. ", languageName(lang))
}

func languageName(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, conf := tag.Base()
	if conf == language.No {
		return lang
	}
	if name := display.English.Languages().Name(base); name != "" {
		return name
	}
	return lang
}
