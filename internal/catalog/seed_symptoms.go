package catalog

// Seed data for the yes/no symptom checklists. Every question is boolean and
// only "yes" answers count toward the score. MinimumRequired is the number of
// questions a session must answer (either way) before a result is released.

func bq(id, prompt string) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindBoolean}
}

var symptomDefinitions = []Definition{
	{
		ID:              "symptoms_lung",
		DisplayName:     "Lung Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("lung_1", "Do you have a persistent cough that won't go away or has worsened?"),
			bq("lung_2", "Have you coughed up blood or blood-stained mucus?"),
			bq("lung_3", "Are you experiencing shortness of breath during normal activities?"),
			bq("lung_4", "Do you have chest pain that worsens when breathing, coughing, or laughing?"),
			bq("lung_5", "Have you experienced unexplained weight loss recently?"),
			bq("lung_6", "Do you feel unusually tired or weak without obvious reason?"),
			bq("lung_7", "Have you noticed hoarseness or voice changes?"),
			bq("lung_8", "Do you frequently get respiratory infections like bronchitis or pneumonia?"),
			bq("lung_9", "Have you ever been a smoker or regularly exposed to secondhand smoke?"),
			bq("lung_10", "Do you have a family history of lung cancer?"),
		},
	},
	{
		ID:              "symptoms_oral",
		DisplayName:     "Oral Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("oral_1", "Do you have persistent mouth sores or ulcers that don't heal?"),
			bq("oral_2", "Have you noticed white or red patches in your mouth?"),
			bq("oral_3", "Do you experience persistent pain in your mouth or throat?"),
			bq("oral_4", "Have you noticed lumps or thickening in your cheek, neck, or throat?"),
			bq("oral_5", "Do you have difficulty swallowing or feel like something is stuck?"),
			bq("oral_6", "Have you experienced persistent hoarseness or voice changes?"),
			bq("oral_7", "Do you have numbness in your tongue, lip, or other mouth areas?"),
			bq("oral_8", "Have you noticed loose teeth without obvious dental problems?"),
			bq("oral_9", "Do you use tobacco products or drink alcohol regularly?"),
			bq("oral_10", "Do you have a history of HPV infection?"),
		},
	},
	{
		ID:              "symptoms_breast",
		DisplayName:     "Breast Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("breast_1", "Have you noticed any unusual lumps or thickening in your breast or underarm?"),
			bq("breast_2", "Have you experienced changes in breast shape or size?"),
			bq("breast_3", "Is there any nipple discharge that is not breast milk?"),
			bq("breast_4", "Do you have persistent breast pain that doesn't go away?"),
			bq("breast_5", "Have you seen skin changes on your breast (dimpling, redness, flaking)?"),
			bq("breast_6", "Has a nipple suddenly turned inward (inverted)?"),
			bq("breast_7", "Have you experienced swelling in part or all of the breast?"),
			bq("breast_8", "Are there lumps that feel hard and don't move?"),
			bq("breast_9", "Has your breast felt warmer than usual or looked inflamed?"),
			bq("breast_10", "Do you have a family history of breast or ovarian cancer?"),
		},
	},
	{
		ID:              "symptoms_skin",
		DisplayName:     "Skin Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("skin_1", "Have you noticed any new moles or skin growths recently?"),
			bq("skin_2", "Has an existing mole changed in size, shape, or color?"),
			bq("skin_3", "Do you have moles with irregular, jagged, or blurred edges?"),
			bq("skin_4", "Is there a mole or lesion that itches, bleeds, or won't heal?"),
			bq("skin_5", "Do you have spots that are multicolored or unusually dark?"),
			bq("skin_6", "Have you had significant sun exposure without sunscreen protection?"),
			bq("skin_7", "Do you have fair skin, light eyes, or red/blonde hair?"),
			bq("skin_8", "Has a family member had skin cancer or melanoma?"),
			bq("skin_9", "Do you have more than 50 moles or unusually large moles?"),
			bq("skin_10", "Have you used tanning beds or had severe sunburns?"),
		},
	},
	{
		ID:              "symptoms_cervical",
		DisplayName:     "Cervical Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("cervical_1", "Have you had unusual vaginal bleeding between periods or after menopause?"),
			bq("cervical_2", "Have you noticed a strong or unusual vaginal odor?"),
			bq("cervical_3", "Do you experience pain during sexual intercourse?"),
			bq("cervical_4", "Do you have pelvic pain not related to menstruation?"),
			bq("cervical_5", "Are your periods heavier or longer than usual?"),
			bq("cervical_6", "Have you ever tested positive for HPV?"),
			bq("cervical_7", "Have you missed a Pap smear in the last 3 years?"),
			bq("cervical_8", "Have you had multiple sexual partners without consistent protection?"),
			bq("cervical_9", "Have you noticed unexplained leg pain or swelling?"),
			bq("cervical_10", "Do you have a weakened immune system or history of HIV?"),
		},
	},
	{
		ID:              "symptoms_colorectal",
		DisplayName:     "Colorectal Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("colorectal_1", "Have you noticed blood in your stool or on toilet paper?"),
			bq("colorectal_2", "Have your bowel habits changed recently (lasting more than a few days)?"),
			bq("colorectal_3", "Do you often feel your bowel doesn't empty completely?"),
			bq("colorectal_4", "Have you experienced unexplained weight loss?"),
			bq("colorectal_5", "Do you frequently feel tired or weak without reason?"),
			bq("colorectal_6", "Have you had frequent abdominal cramps, pain, or bloating?"),
			bq("colorectal_7", "Are you over the age of 45?"),
			bq("colorectal_8", "Do you have a history of colon polyps or inflammatory bowel disease?"),
			bq("colorectal_9", "Has a close family member had colon or rectal cancer?"),
			bq("colorectal_10", "Do you have a diet high in red meat and low in fiber?"),
		},
	},
	{
		ID:              "symptoms_prostate",
		DisplayName:     "Prostate Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("prostate_1", "Do you have difficulty starting or stopping urination?"),
			bq("prostate_2", "Do you feel a frequent need to urinate, especially at night?"),
			bq("prostate_3", "Do you experience a weak or interrupted urine stream?"),
			bq("prostate_4", "Have you noticed blood in your urine or semen?"),
			bq("prostate_5", "Do you have pain or burning while urinating?"),
			bq("prostate_6", "Have you felt pain in your lower back, hips, or thighs?"),
			bq("prostate_7", "Are you over the age of 50?"),
			bq("prostate_8", "Do you have a family history of prostate cancer?"),
			bq("prostate_9", "Have you experienced erectile dysfunction?"),
			bq("prostate_10", "Do you have African ancestry (higher risk factor)?"),
		},
	},
	{
		ID:              "symptoms_pancreatic",
		DisplayName:     "Pancreatic Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("pancreatic_1", "Have you experienced upper abdominal pain radiating to your back?"),
			bq("pancreatic_2", "Have you had unexplained weight loss recently?"),
			bq("pancreatic_3", "Have you noticed yellowing of your skin or eyes (jaundice)?"),
			bq("pancreatic_4", "Do you have dark-colored urine and/or light-colored stools?"),
			bq("pancreatic_5", "Have you experienced loss of appetite or nausea?"),
			bq("pancreatic_6", "Are you often fatigued without clear reason?"),
			bq("pancreatic_7", "Have you recently developed diabetes or blood sugar changes?"),
			bq("pancreatic_8", "Do you smoke or have a history of smoking?"),
			bq("pancreatic_9", "Do you have a family history of pancreatic cancer?"),
			bq("pancreatic_10", "Have you noticed blood clots or leg pain/swelling?"),
		},
	},
	{
		ID:              "symptoms_leukemia",
		DisplayName:     "Leukemia",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("leukemia_1", "Do you frequently feel weak, tired, or short of breath?"),
			bq("leukemia_2", "Have you had frequent infections or fever?"),
			bq("leukemia_3", "Do you bruise easily or have unusual bleeding?"),
			bq("leukemia_4", "Have you noticed tiny red spots on your skin (petechiae)?"),
			bq("leukemia_5", "Do you have swollen lymph nodes in your neck, armpits, or groin?"),
			bq("leukemia_6", "Have you experienced bone or joint pain?"),
			bq("leukemia_7", "Have you had unexplained weight loss?"),
			bq("leukemia_8", "Do you feel full quickly or have abdominal discomfort?"),
			bq("leukemia_9", "Have you had night sweats or chills?"),
			bq("leukemia_10", "Do you have a family history of blood cancers?"),
		},
	},
	{
		ID:              "symptoms_ovarian",
		DisplayName:     "Ovarian Cancer",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 5,
		Questions: []Question{
			bq("ovarian_1", "Have you experienced persistent abdominal bloating?"),
			bq("ovarian_2", "Do you feel full quickly after starting meals?"),
			bq("ovarian_3", "Do you have pelvic or abdominal pain that persists?"),
			bq("ovarian_4", "Have you had changes in bowel habits (constipation or diarrhea)?"),
			bq("ovarian_5", "Are you urinating more frequently than usual?"),
			bq("ovarian_6", "Have you experienced sudden or unexplained weight changes?"),
			bq("ovarian_7", "Have you felt fatigue or lack of energy without reason?"),
			bq("ovarian_8", "Do you have a family history of ovarian or breast cancer?"),
			bq("ovarian_9", "Have you had irregular menstrual cycles or unusual bleeding?"),
			bq("ovarian_10", "Have you never been pregnant or had fertility issues?"),
		},
	},
	{
		ID:              "symptoms_general",
		DisplayName:     "General Cancer Screening",
		Scheme:          SchemeBooleanThreshold,
		MinimumRequired: 25,
		Composite:       true,
		Questions: []Question{
			bq("general_1", "Have you experienced unexplained weight loss of 10+ pounds?"),
			bq("general_2", "Do you feel unusually tired or weak most days?"),
			bq("general_3", "Have you had fever or night sweats without obvious cause?"),
			bq("general_4", "Do you have persistent pain anywhere in your body?"),
			bq("general_5", "Have you noticed any unusual lumps or swellings?"),
			bq("general_6", "Have you had persistent nausea or loss of appetite?"),
			bq("general_7", "Do you have any unusual bleeding or discharge?"),
			bq("general_8", "Have you noticed changes in your skin, moles, or warts?"),
			bq("general_9", "Do you have difficulty swallowing or persistent indigestion?"),
			bq("general_10", "Have you had a cough or hoarseness that won't go away?"),
			bq("general_11", "Do you have persistent chest pain or discomfort?"),
			bq("general_12", "Are you experiencing shortness of breath during normal activities?"),
			bq("general_13", "Have you coughed up blood or blood-stained mucus?"),
			bq("general_14", "Do you frequently get respiratory infections?"),
			bq("general_15", "Have you been exposed to asbestos, radon, or other carcinogens?"),
			bq("general_16", "Have you noticed blood in your stool or black, tarry stools?"),
			bq("general_17", "Have your bowel habits changed significantly recently?"),
			bq("general_18", "Do you have persistent abdominal pain or bloating?"),
			bq("general_19", "Have you vomited blood or coffee-ground material?"),
			bq("general_20", "Do you have persistent heartburn or indigestion?"),
			bq("general_21", "Have you noticed yellowing of your skin or eyes?"),
			bq("general_22", "Do you have dark urine or light-colored stools?"),
			bq("general_23", "Have you felt full quickly when eating small amounts?"),
			bq("general_24", "Have you had unusual vaginal bleeding or discharge?"),
			bq("general_25", "Do you have pelvic pain not related to menstruation?"),
			bq("general_26", "Have you noticed blood in your urine?"),
			bq("general_27", "Do you have difficulty or pain while urinating?"),
			bq("general_28", "Have you experienced changes in urination frequency?"),
			bq("general_29", "Do you have testicular pain or swelling?"),
			bq("general_30", "Have you noticed changes in breast shape, size, or texture?"),
			bq("general_31", "Have you noticed new or changing moles or skin spots?"),
			bq("general_32", "Do you have sores that don't heal within 2-3 weeks?"),
			bq("general_33", "Have you found unusual lumps in your neck, armpits, or groin?"),
			bq("general_34", "Do you bruise easily or have unexplained bruising?"),
			bq("general_35", "Have you noticed swollen lymph nodes?"),
			bq("general_36", "Have you experienced persistent headaches or vision changes?"),
			bq("general_37", "Do you have numbness, tingling, or weakness in limbs?"),
			bq("general_38", "Have you had seizures or balance problems?"),
			bq("general_39", "Do you experience memory problems or confusion?"),
			bq("general_40", "Have you noticed changes in speech or coordination?"),
			bq("general_41", "Do you smoke or use tobacco products?"),
			bq("general_42", "Do you drink alcohol regularly (more than 2 drinks/day)?"),
			bq("general_43", "Are you significantly overweight or obese?"),
			bq("general_44", "Do you have a family history of cancer?"),
			bq("general_45", "Have you been exposed to radiation or chemotherapy?"),
			bq("general_46", "Do you have a history of chronic infections (HPV, Hepatitis, H. pylori)?"),
			bq("general_47", "Have you taken hormone replacement therapy or birth control for many years?"),
			bq("general_48", "Do you have a diet high in processed meats and low in fruits/vegetables?"),
			bq("general_49", "Are you over 50 years old?"),
			bq("general_50", "Have you missed recommended cancer screenings (mammogram, colonoscopy, Pap smear)?"),
		},
	},
}
