// Package assistant answers free-text health questions. A built-in keyword
// matcher always produces an answer; when the caller supplies an OpenAI key
// the hosted model is tried first with the matcher as the safety net.
package assistant

import "strings"

// rule is one entry in the reply ladder. A rule fires when the lowercased
// message contains at least one keyword from EVERY group in triggers. Rules
// are evaluated in declaration order and the first hit wins, so specific
// rules (breast symptoms) must precede their generic parent (any symptoms).
type rule struct {
	triggers [][]string
	reply    string
}

// rules is the full ladder. Order is load-bearing: the per-topic symptom and
// diet rows shadow the generic rows below them.
var rules = []rule{
	{
		triggers: [][]string{{"symptom", "sign", "warning"}, {"breast"}},
		reply:    "Common breast cancer symptoms include: a lump or thickening in the breast or underarm, changes in breast size or shape, dimpling of the skin, nipple discharge (especially bloody), changes in nipple appearance, or skin changes like redness or scaling. Remember, many breast changes are not cancer, but it's important to have any changes evaluated by a healthcare professional.",
	},
	{
		triggers: [][]string{{"symptom", "sign", "warning"}, {"lung"}},
		reply:    "Lung cancer symptoms may include: persistent cough that doesn't go away, cough that produces blood, shortness of breath, chest pain, hoarseness, unexplained weight loss, bone pain, or recurrent respiratory infections. Many of these symptoms can have other causes, so see a doctor if symptoms persist.",
	},
	{
		triggers: [][]string{{"symptom", "sign", "warning"}, {"skin"}},
		reply:    "Watch for the ABCDEs of melanoma: Asymmetry (one half doesn't match the other), Border irregularity, Color variation within the same mole, Diameter larger than 6mm, and Evolving (changing) moles. Also watch for new growths, sores that don't heal, or changes in existing moles.",
	},
	{
		triggers: [][]string{{"symptom", "sign", "warning"}, {"colorectal", "colon"}},
		reply:    "Colorectal cancer symptoms include: changes in bowel habits lasting more than a few days, blood in stool, persistent abdominal discomfort, weakness or fatigue, and unexplained weight loss. Many of these symptoms can be caused by other conditions, but persistent symptoms warrant medical evaluation.",
	},
	{
		triggers: [][]string{{"symptom", "sign", "warning"}},
		reply:    "Cancer symptoms vary by type and location. Common warning signs include unexplained weight loss, persistent fatigue, changes in bowel or bladder habits, unusual bleeding, lumps or thickening, persistent cough, and changes in skin moles. Early detection saves lives - consult a healthcare provider if you notice persistent changes.",
	},
	{
		triggers: [][]string{{"prevent", "reduce risk", "healthy"}, {"diet", "food"}},
		reply:    "A cancer-preventive diet includes: 5+ servings of fruits and vegetables daily, whole grains instead of refined grains, lean proteins (fish, poultry, legumes), limited red and processed meats, minimal alcohol consumption, and plenty of water. Foods rich in antioxidants, fiber, and phytochemicals are particularly beneficial.",
	},
	{
		triggers: [][]string{{"prevent", "reduce risk", "healthy"}},
		reply:    "Key cancer prevention strategies: 1) Don't smoke or use tobacco, 2) Maintain a healthy weight, 3) Exercise regularly (150+ minutes weekly), 4) Eat a healthy diet rich in fruits and vegetables, 5) Limit alcohol, 6) Protect yourself from sun exposure, 7) Get vaccinated (HPV, Hepatitis B), 8) Follow screening guidelines, and 9) Avoid environmental toxins.",
	},
	{
		triggers: [][]string{{"treatment", "therapy", "cure"}},
		reply:    "Cancer treatments vary by type and stage but may include: surgery (removing tumors), chemotherapy (drugs that kill cancer cells), radiation therapy (high-energy beams), immunotherapy (boosting immune system), targeted therapy (drugs targeting specific cancer features), and hormone therapy. Treatment plans are personalized based on the specific cancer, stage, and patient factors. Always work with an oncology team for proper treatment.",
	},
	{
		triggers: [][]string{{"screening", "test", "mammogram", "colonoscopy"}},
		reply:    "Important cancer screenings include: Mammograms for breast cancer (annually starting at 40-50), Pap smears for cervical cancer (every 3 years from age 21), Colonoscopy for colorectal cancer (every 10 years starting at 45-50), Low-dose CT for lung cancer (high-risk individuals), and regular skin checks. Screening frequency may vary based on risk factors - consult your healthcare provider.",
	},
	{
		triggers: [][]string{{"vaccine", "hpv", "hepatitis"}},
		reply:    "Cancer-preventing vaccines include: HPV vaccine (prevents cervical, anal, and other cancers - recommended for ages 9-26, most effective before sexual activity begins), and Hepatitis B vaccine (prevents liver cancer). These vaccines are highly effective when given at recommended ages and can significantly reduce cancer risk.",
	},
	{
		triggers: [][]string{{"exercise", "physical activity"}},
		reply:    "Regular physical activity reduces cancer risk by 20-30%. Aim for at least 150 minutes of moderate-intensity exercise weekly, plus strength training twice weekly. Exercise helps maintain healthy weight, boosts immune function, improves hormone levels, and reduces inflammation. Even light activity like walking provides benefits.",
	},
	{
		triggers: [][]string{{"risk", "cause"}},
		reply:    "Major cancer risk factors include: tobacco use (leading cause), excessive alcohol consumption, unhealthy diet, lack of physical activity, obesity, certain infections (HPV, Hepatitis B/C), radiation exposure, family history/genetics, age, and environmental toxins. While some factors like genetics can't be changed, many lifestyle factors can be modified to reduce risk.",
	},
}

// defaultReply is returned when no rule fires, so Match is total.
const defaultReply = "I can provide information about cancer symptoms, prevention strategies, screening guidelines, treatment options, risk factors, and healthy lifestyle habits. For specific questions about: symptoms (breast, lung, skin, colorectal cancers), prevention methods (diet, exercise, vaccines), screening tests (mammograms, Pap smears, colonoscopies), or general health tips, please ask! Remember, this information is educational - always consult healthcare professionals for personalized medical advice."

// Match returns the canned reply for a user message. Matching is
// case-insensitive substring containment; no stemming, no punctuation
// stripping. Deterministic and never empty.
func Match(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if r.matches(msg) {
			return r.reply
		}
	}
	return defaultReply
}

func (r rule) matches(msg string) bool {
	for _, group := range r.triggers {
		if !containsAny(msg, group) {
			return false
		}
	}
	return true
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
