package catalog

// Seed data for the weighted-percentage risk quizzes. Each option carries the
// weight the user's selection contributes to the numerator; the denominator
// always assumes a per-question maximum of 5 (see scoring.ScoreWeighted), so
// option sets that top out below 5 simply cannot reach a 100% score on their
// own. That asymmetry is part of the published scoring behaviour.

func wq(id, prompt string, options ...Option) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindWeightedChoice, Options: options}
}

func opt(weight int, label string) Option {
	return Option{Weight: weight, Label: label}
}

var weightedDefinitions = []Definition{
	{
		ID:          "risk_general",
		DisplayName: "General Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 30"),
				opt(2, "30-40"),
				opt(3, "40-50"),
				opt(4, "50-60"),
				opt(5, "Over 60"),
			),
			wq("family_history", "Do you have a family history of cancer?",
				opt(1, "No family history"),
				opt(3, "Distant relatives"),
				opt(5, "Close relatives (parents, siblings)"),
			),
			wq("smoking", "What is your smoking status?",
				opt(1, "Never smoked"),
				opt(2, "Former smoker (quit >5 years ago)"),
				opt(3, "Former smoker (quit <5 years ago)"),
				opt(5, "Current smoker"),
			),
			wq("alcohol", "How often do you consume alcohol?",
				opt(1, "Never/Rarely"),
				opt(2, "1-2 drinks per week"),
				opt(3, "3-7 drinks per week"),
				opt(4, "More than 7 drinks per week"),
			),
			wq("diet", "How would you describe your diet?",
				opt(1, "Very healthy (lots of fruits/vegetables)"),
				opt(2, "Moderately healthy"),
				opt(3, "Average"),
				opt(4, "Poor (processed foods, limited fruits/vegetables)"),
			),
			wq("exercise", "How often do you exercise?",
				opt(1, "5+ times per week"),
				opt(2, "3-4 times per week"),
				opt(3, "1-2 times per week"),
				opt(4, "Rarely/Never"),
			),
			wq("weight", "What is your BMI status?",
				opt(1, "Normal weight (BMI 18.5-24.9)"),
				opt(2, "Slightly overweight (BMI 25-29.9)"),
				opt(3, "Obese (BMI 30-34.9)"),
				opt(4, "Severely obese (BMI 35+)"),
			),
			wq("sun_exposure", "How often do you protect yourself from sun exposure?",
				opt(1, "Always use sunscreen and protective clothing"),
				opt(2, "Usually protect myself"),
				opt(3, "Sometimes protect myself"),
				opt(4, "Rarely protect myself"),
			),
		},
	},
	{
		ID:          "risk_breast",
		DisplayName: "Breast Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 40"),
				opt(2, "40-49"),
				opt(3, "50-59"),
				opt(4, "60-69"),
				opt(5, "70+"),
			),
			wq("family_history", "Family history of breast or ovarian cancer?",
				opt(1, "No family history"),
				opt(3, "One relative with breast cancer"),
				opt(5, "Multiple relatives or BRCA mutation"),
			),
			wq("personal_history", "Any personal history of breast problems?",
				opt(1, "No history"),
				opt(3, "Benign breast disease"),
				opt(4, "Previous breast cancer"),
			),
			wq("reproductive_history", "At what age did you have your first child?",
				opt(1, "Before 20"),
				opt(2, "20-24"),
				opt(3, "25-29"),
				opt(4, "30 or older"),
				opt(5, "Never had children"),
			),
			wq("menstrual_history", "At what age did you start menstruating?",
				opt(1, "14 or older"),
				opt(2, "13"),
				opt(3, "12"),
				opt(4, "11 or younger"),
			),
			wq("hormone_therapy", "Have you used hormone replacement therapy?",
				opt(1, "Never used"),
				opt(2, "Used for less than 5 years"),
				opt(4, "Used for 5+ years"),
			),
			wq("breast_density", "What is your breast density (if known)?",
				opt(1, "Low density"),
				opt(2, "Moderate density"),
				opt(3, "High density"),
				opt(2, "Unknown"),
			),
		},
	},
	{
		ID:          "risk_lung",
		DisplayName: "Lung Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("smoking_status", "What is your smoking history?",
				opt(1, "Never smoked"),
				opt(3, "Former smoker (quit >15 years ago)"),
				opt(4, "Former smoker (quit 5-15 years ago)"),
				opt(5, "Current smoker or quit <5 years ago"),
			),
			wq("pack_years", "If you smoked, how many pack-years?",
				opt(1, "Never smoked"),
				opt(2, "Less than 10 pack-years"),
				opt(3, "10-20 pack-years"),
				opt(4, "20-30 pack-years"),
				opt(5, "More than 30 pack-years"),
			),
			wq("secondhand_smoke", "Exposure to secondhand smoke?",
				opt(1, "Minimal exposure"),
				opt(2, "Moderate exposure"),
				opt(3, "Heavy exposure"),
			),
			wq("occupational_exposure", "Occupational exposure to carcinogens?",
				opt(1, "No known exposure"),
				opt(3, "Some exposure (asbestos, radon, etc.)"),
				opt(4, "High exposure"),
			),
			wq("family_history", "Family history of lung cancer?",
				opt(1, "No family history"),
				opt(3, "One relative"),
				opt(4, "Multiple relatives"),
			),
		},
	},
	{
		ID:          "risk_colorectal",
		DisplayName: "Colorectal Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 45"),
				opt(2, "45-49"),
				opt(3, "50-59"),
				opt(4, "60-69"),
				opt(5, "70+"),
			),
			wq("family_history", "Family history of colorectal cancer?",
				opt(1, "No family history"),
				opt(3, "One relative diagnosed after 60"),
				opt(4, "One relative diagnosed before 60"),
				opt(5, "Multiple relatives"),
			),
			wq("personal_history", "Personal history of polyps or IBD?",
				opt(1, "No history"),
				opt(3, "History of polyps"),
				opt(4, "Inflammatory bowel disease"),
			),
			wq("diet", "How often do you eat red or processed meat?",
				opt(1, "Rarely"),
				opt(2, "1-2 times per week"),
				opt(3, "3-4 times per week"),
				opt(4, "Daily"),
			),
			wq("lifestyle", "Physical activity level?",
				opt(1, "Very active"),
				opt(2, "Moderately active"),
				opt(3, "Somewhat active"),
				opt(4, "Sedentary"),
			),
		},
	},
	{
		ID:          "risk_prostate",
		DisplayName: "Prostate Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 50"),
				opt(2, "50-59"),
				opt(3, "60-69"),
				opt(4, "70-79"),
				opt(5, "80+"),
			),
			wq("race", "What is your race/ethnicity?",
				opt(2, "White"),
				opt(3, "Hispanic"),
				opt(4, "African American"),
				opt(2, "Asian"),
				opt(2, "Other"),
			),
			wq("family_history", "Family history of prostate cancer?",
				opt(1, "No family history"),
				opt(3, "One relative"),
				opt(4, "Multiple relatives"),
			),
			wq("psa_levels", "Previous PSA test results?",
				opt(1, "Normal PSA levels"),
				opt(2, "Slightly elevated PSA"),
				opt(3, "Moderately elevated PSA"),
				opt(4, "High PSA levels"),
				opt(2, "Never tested"),
			),
			wq("symptoms", "Any urinary symptoms?",
				opt(1, "No symptoms"),
				opt(2, "Mild symptoms"),
				opt(3, "Moderate symptoms"),
				opt(4, "Severe symptoms"),
			),
		},
	},
	{
		ID:          "risk_skin",
		DisplayName: "Skin Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("skin_type", "What is your skin type?",
				opt(1, "Dark skin, never burns"),
				opt(2, "Medium skin, rarely burns"),
				opt(3, "Light skin, sometimes burns"),
				opt(4, "Very light skin, always burns"),
			),
			wq("sun_exposure", "History of sun exposure?",
				opt(1, "Minimal sun exposure"),
				opt(2, "Moderate sun exposure"),
				opt(3, "High sun exposure"),
				opt(4, "Extreme sun exposure"),
			),
			wq("sunburns", "History of severe sunburns?",
				opt(1, "Never had severe sunburns"),
				opt(2, "1-2 severe sunburns"),
				opt(3, "3-5 severe sunburns"),
				opt(4, "More than 5 severe sunburns"),
			),
			wq("moles", "Number of moles on your body?",
				opt(1, "Few moles (under 25)"),
				opt(2, "Some moles (25-50)"),
				opt(3, "Many moles (50-100)"),
				opt(4, "Very many moles (over 100)"),
			),
			wq("family_history", "Family history of skin cancer?",
				opt(1, "No family history"),
				opt(3, "One relative"),
				opt(4, "Multiple relatives"),
			),
		},
	},
	{
		ID:          "risk_cervical",
		DisplayName: "Cervical Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 25"),
				opt(2, "25-34"),
				opt(3, "35-44"),
				opt(4, "45-54"),
				opt(3, "55+"),
			),
			wq("hpv_status", "HPV vaccination status?",
				opt(1, "Fully vaccinated"),
				opt(2, "Partially vaccinated"),
				opt(4, "Not vaccinated"),
				opt(3, "Unknown"),
			),
			wq("screening_history", "When was your last Pap smear?",
				opt(1, "Within last year"),
				opt(2, "1-3 years ago"),
				opt(3, "3-5 years ago"),
				opt(4, "More than 5 years ago"),
				opt(5, "Never had one"),
			),
			wq("sexual_history", "Age at first sexual intercourse?",
				opt(1, "18 or older"),
				opt(2, "16-17"),
				opt(3, "14-15"),
				opt(4, "Under 14"),
			),
			wq("smoking", "Smoking status?",
				opt(1, "Never smoked"),
				opt(2, "Former smoker"),
				opt(4, "Current smoker"),
			),
		},
	},
	{
		ID:          "risk_pancreatic",
		DisplayName: "Pancreatic Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("age", "What is your age?",
				opt(1, "Under 50"),
				opt(2, "50-59"),
				opt(3, "60-69"),
				opt(4, "70-79"),
				opt(5, "80+"),
			),
			wq("family_history", "Family history of pancreatic cancer?",
				opt(1, "No family history"),
				opt(4, "One relative"),
				opt(5, "Multiple relatives"),
			),
			wq("diabetes", "History of diabetes?",
				opt(1, "No diabetes"),
				opt(2, "Type 2 diabetes >5 years"),
				opt(3, "Type 2 diabetes <5 years"),
				opt(4, "Recent onset diabetes"),
			),
			wq("smoking", "Smoking history?",
				opt(1, "Never smoked"),
				opt(2, "Former smoker"),
				opt(4, "Current smoker"),
			),
			wq("pancreatitis", "History of pancreatitis?",
				opt(1, "No history"),
				opt(3, "Acute pancreatitis"),
				opt(4, "Chronic pancreatitis"),
			),
		},
	},
	{
		ID:          "risk_brain",
		DisplayName: "Brain Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			// Age risk is U-shaped here: under-20 and 40-59 both carry 2.
			wq("age", "What is your age?",
				opt(2, "Under 20"),
				opt(1, "20-39"),
				opt(2, "40-59"),
				opt(3, "60+"),
			),
			wq("family_history", "Family history of brain tumors?",
				opt(1, "No family history"),
				opt(4, "One relative"),
				opt(5, "Multiple relatives or genetic syndrome"),
			),
			wq("radiation_exposure", "Previous radiation to head/neck?",
				opt(1, "No radiation exposure"),
				opt(3, "Medical radiation (CT scans, etc.)"),
				opt(4, "Therapeutic radiation"),
			),
			wq("immune_system", "Immune system status?",
				opt(1, "Normal immune system"),
				opt(3, "Immunocompromised"),
			),
			wq("symptoms", "Any neurological symptoms?",
				opt(1, "No symptoms"),
				opt(2, "Occasional headaches"),
				opt(3, "Persistent headaches"),
				opt(4, "Seizures or other neurological symptoms"),
			),
		},
	},
	{
		ID:          "risk_oral",
		DisplayName: "Oral Cancer Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			wq("tobacco_use", "Tobacco use history?",
				opt(1, "Never used tobacco"),
				opt(2, "Former user"),
				opt(4, "Current smoker"),
				opt(5, "Current smokeless tobacco user"),
			),
			wq("alcohol_use", "Alcohol consumption?",
				opt(1, "Never/Rarely drink"),
				opt(2, "Moderate drinking"),
				opt(4, "Heavy drinking"),
			),
			wq("hpv_exposure", "HPV exposure risk?",
				opt(1, "Low risk"),
				opt(2, "Moderate risk"),
				opt(4, "High risk"),
			),
			wq("dental_health", "Dental and oral health?",
				opt(1, "Excellent oral health"),
				opt(2, "Good oral health"),
				opt(3, "Fair oral health"),
				opt(4, "Poor oral health"),
			),
			wq("sun_exposure", "Sun exposure to lips?",
				opt(1, "Always use lip protection"),
				opt(2, "Sometimes use protection"),
				opt(3, "Rarely use protection"),
				opt(4, "Never use protection"),
			),
		},
	},
	{
		ID:          "risk_leukemia",
		DisplayName: "Leukemia Risk Assessment",
		Scheme:      SchemeWeightedPercentage,
		Questions: []Question{
			// Same U-shape as brain: childhood and 60+ both elevated.
			wq("age", "What is your age?",
				opt(3, "Under 15"),
				opt(1, "15-39"),
				opt(2, "40-59"),
				opt(3, "60+"),
			),
			wq("family_history", "Family history of blood cancers?",
				opt(1, "No family history"),
				opt(3, "One relative"),
				opt(4, "Multiple relatives"),
			),
			wq("chemical_exposure", "Exposure to chemicals or radiation?",
				opt(1, "No known exposure"),
				opt(2, "Minimal exposure"),
				opt(3, "Moderate exposure"),
				opt(4, "High exposure"),
			),
			wq("previous_cancer", "Previous cancer treatment?",
				opt(1, "No previous cancer"),
				opt(3, "Previous chemotherapy"),
				opt(4, "Previous radiation therapy"),
			),
			wq("blood_disorders", "History of blood disorders?",
				opt(1, "No blood disorders"),
				opt(3, "Anemia or other blood conditions"),
				opt(4, "Genetic blood disorders"),
			),
		},
	},
}
