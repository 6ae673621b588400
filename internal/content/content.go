// Package content serves the static cancer-information library. Like catalog,
// it is read-only data compiled into the binary.
package content

// Source is an external reference a reader can follow for more detail.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Info is one cancer-type article.
type Info struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Prevalence  string   `json:"prevalence"`
	Overview    string   `json:"overview"`
	Symptoms    []string `json:"symptoms"`
	RiskFactors []string `json:"risk_factors"`
	Prevention  string   `json:"prevention"`
	Sources     []Source `json:"sources"`
}

// All returns every article in display order.
func All() []Info {
	out := make([]Info, len(entries))
	copy(out, entries)
	return out
}

// Get looks up an article by ID.
func Get(id string) (Info, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Info{}, false
}

var entries = []Info{
	{
		ID:          "breast",
		Name:        "Breast Cancer",
		Category:    "Common",
		Prevalence:  "1 in 8 women",
		Overview:    "Breast cancer forms in the cells of the breast tissue and is one of the most common cancers affecting women, though it can also occur in men. Early detection through regular screening significantly improves treatment outcomes. The cancer typically begins in the ducts that carry milk to the nipple or in the lobules that produce milk.",
		Symptoms:    []string{"Breast lumps", "Changes in breast size or shape", "Skin dimpling", "Nipple discharge", "Breast or nipple pain"},
		RiskFactors: []string{"Age (over 50)", "Family history", "BRCA gene mutations", "Dense breast tissue", "Previous breast cancer"},
		Prevention:  "Regular mammograms starting at age 40-50, monthly self-examinations, maintaining a healthy weight, limiting alcohol consumption, and staying physically active. For high-risk individuals, genetic counseling and preventive medications may be recommended.",
		Sources: []Source{
			{Name: "American Cancer Society", URL: "https://www.cancer.org/cancer/breast-cancer.html"},
			{Name: "National Cancer Institute", URL: "https://www.cancer.gov/types/breast"},
		},
	},
	{
		ID:          "colorectal",
		Name:        "Colorectal Cancer",
		Category:    "Common",
		Prevalence:  "1 in 23 people",
		Overview:    "Colorectal cancer develops in the colon or rectum and is often preventable through regular screening. It typically starts as small, benign clumps of cells called polyps that can become cancerous over time. Most colorectal cancers develop slowly over several years, making screening particularly effective for prevention and early detection.",
		Symptoms:    []string{"Changes in bowel habits", "Blood in stool", "Abdominal pain or cramping", "Unexplained weight loss", "Fatigue"},
		RiskFactors: []string{"Age (over 50)", "Family history", "Inflammatory bowel disease", "Diet high in red meat", "Smoking", "Obesity"},
		Prevention:  "Regular colonoscopy screening starting at age 45-50, maintaining a diet rich in fruits and vegetables, limiting red and processed meats, staying physically active, avoiding smoking, and limiting alcohol consumption. Early removal of polyps during colonoscopy can prevent cancer development.",
		Sources: []Source{
			{Name: "Colorectal Cancer Alliance", URL: "https://www.ccalliance.org/"},
			{Name: "CDC Colorectal Cancer", URL: "https://www.cdc.gov/cancer/colorectal/"},
		},
	},
	{
		ID:          "lung",
		Name:        "Lung Cancer",
		Category:    "Leading Cause",
		Prevalence:  "Leading cancer killer",
		Overview:    "Lung cancer is the leading cause of cancer deaths worldwide and is primarily caused by smoking, though non-smokers can also develop the disease. There are two main types: non-small cell lung cancer (most common) and small cell lung cancer. Early-stage lung cancer often has no symptoms, making screening important for high-risk individuals.",
		Symptoms:    []string{"Persistent cough", "Coughing up blood", "Shortness of breath", "Chest pain", "Hoarseness", "Unexplained weight loss"},
		RiskFactors: []string{"Smoking", "Secondhand smoke", "Radon exposure", "Asbestos exposure", "Family history", "Air pollution"},
		Prevention:  "Never start smoking or quit if you currently smoke, avoid secondhand smoke, test your home for radon, avoid exposure to carcinogenic chemicals, eat a diet rich in fruits and vegetables, and consider low-dose CT screening if you're at high risk.",
		Sources: []Source{
			{Name: "Lung Cancer Alliance", URL: "https://lungcanceralliance.org/"},
			{Name: "American Lung Association", URL: "https://www.lung.org/lung-health-diseases/lung-disease-lookup/lung-cancer"},
		},
	},
	{
		ID:          "prostate",
		Name:        "Prostate Cancer",
		Category:    "Men's Health",
		Prevalence:  "1 in 8 men",
		Overview:    "Prostate cancer occurs in the prostate gland, which produces seminal fluid that nourishes and transports sperm. It's one of the most common types of cancer in men, typically growing slowly and remaining confined to the prostate gland initially. Some types are aggressive and can spread quickly, while others grow so slowly they may never cause serious harm.",
		Symptoms:    []string{"Difficulty urinating", "Decreased force in urine stream", "Blood in urine or semen", "Bone pain", "Erectile dysfunction"},
		RiskFactors: []string{"Age (over 50)", "Race (higher in African American men)", "Family history", "Obesity", "Geography"},
		Prevention:  "Regular screening discussions with healthcare providers starting at age 50 (or 45 for high-risk men), maintaining a healthy diet rich in fruits and vegetables, staying physically active, and maintaining a healthy weight. The decision to screen should be individualized based on risk factors.",
		Sources: []Source{
			{Name: "Prostate Cancer Foundation", URL: "https://www.pcf.org/"},
			{Name: "American Cancer Society - Prostate", URL: "https://www.cancer.org/cancer/prostate-cancer.html"},
		},
	},
	{
		ID:          "skin",
		Name:        "Skin Cancer",
		Category:    "Most Common",
		Prevalence:  "Most common cancer",
		Overview:    "Skin cancer is the most common form of cancer, with over 5 million cases treated annually in the United States. The three main types are basal cell carcinoma, squamous cell carcinoma, and melanoma. While basal and squamous cell carcinomas are highly treatable when caught early, melanoma can be more aggressive and life-threatening if not detected and treated promptly.",
		Symptoms:    []string{"New moles or changes in existing moles", "Asymmetrical moles", "Irregular borders", "Color variations", "Diameter larger than pencil eraser"},
		RiskFactors: []string{"UV radiation exposure", "Fair skin", "History of sunburns", "Family history", "Multiple moles", "Weakened immune system"},
		Prevention:  "Use broad-spectrum sunscreen with SPF 30 or higher, seek shade during peak sun hours (10 AM - 4 PM), wear protective clothing and wide-brimmed hats, avoid tanning beds, perform monthly skin self-examinations, and have regular professional skin checks.",
		Sources: []Source{
			{Name: "Skin Cancer Foundation", URL: "https://www.skincancer.org/"},
			{Name: "Melanoma Research Alliance", URL: "https://www.curemelanoma.org/"},
		},
	},
	{
		ID:          "cervical",
		Name:        "Cervical Cancer",
		Category:    "Women's Health",
		Prevalence:  "Highly preventable",
		Overview:    "Cervical cancer occurs in the cells of the cervix and is primarily caused by persistent infection with high-risk types of human papillomavirus (HPV). It's one of the most preventable cancers through regular screening with Pap tests and HPV testing. When detected early through screening, cervical cancer is highly treatable with excellent outcomes.",
		Symptoms:    []string{"Abnormal vaginal bleeding", "Bleeding between periods", "Bleeding after menopause", "Unusual vaginal discharge", "Pelvic pain"},
		RiskFactors: []string{"HPV infection", "Multiple sexual partners", "Early sexual activity", "Smoking", "Weakened immune system", "Long-term oral contraceptive use"},
		Prevention:  "Regular Pap tests starting at age 21, HPV vaccination (recommended for ages 11-12, catch-up through age 26), practicing safe sex, limiting number of sexual partners, and avoiding smoking. The HPV vaccine can prevent the types of HPV that cause most cervical cancers.",
		Sources: []Source{
			{Name: "National Cervical Cancer Coalition", URL: "https://www.nccc-online.org/"},
			{Name: "CDC Cervical Cancer", URL: "https://www.cdc.gov/cancer/cervical/"},
		},
	},
	{
		ID:          "ovarian",
		Name:        "Ovarian Cancer",
		Category:    "Women's Health",
		Prevalence:  "Silent killer",
		Overview:    "Ovarian cancer often goes undetected until it has spread within the pelvis and abdomen, earning it the nickname 'silent killer.' However, recent studies suggest that early symptoms may be present but are often subtle and easily attributed to other conditions. There are several types of ovarian cancer, with epithelial ovarian cancer being the most common.",
		Symptoms:    []string{"Abdominal bloating", "Pelvic pain", "Feeling full quickly when eating", "Urinary urgency or frequency", "Fatigue", "Back pain"},
		RiskFactors: []string{"Age (over 50)", "Family history", "BRCA gene mutations", "Never being pregnant", "Hormone replacement therapy", "Endometriosis"},
		Prevention:  "While there's no reliable screening test, women with family history should consider genetic counseling. Birth control pills may reduce risk, as may pregnancy and breastfeeding. For high-risk women, preventive surgery may be an option after completing childbearing.",
		Sources: []Source{
			{Name: "Ovarian Cancer Research Alliance", URL: "https://ocrahope.org/"},
			{Name: "National Ovarian Cancer Coalition", URL: "https://ovarian.org/"},
		},
	},
	{
		ID:          "pancreatic",
		Name:        "Pancreatic Cancer",
		Category:    "Aggressive",
		Prevalence:  "4% of cancers",
		Overview:    "Pancreatic cancer is one of the most aggressive forms of cancer, often diagnosed at advanced stages because early symptoms are vague and easily overlooked. The pancreas produces enzymes that help digestion and hormones like insulin that regulate blood sugar. Most pancreatic cancers begin in the ducts that carry digestive enzymes.",
		Symptoms:    []string{"Abdominal pain radiating to back", "Unexplained weight loss", "Jaundice (yellowing of skin/eyes)", "Loss of appetite", "New-onset diabetes", "Blood clots"},
		RiskFactors: []string{"Smoking", "Obesity", "Diabetes", "Chronic pancreatitis", "Family history", "Age (over 60)", "Certain genetic syndromes"},
		Prevention:  "Maintain a healthy weight, don't smoke, limit alcohol consumption, eat a diet rich in fruits and vegetables, stay physically active, and manage diabetes effectively. For those with strong family history, genetic counseling may be beneficial.",
		Sources: []Source{
			{Name: "Pancreatic Cancer Action Network", URL: "https://www.pancan.org/"},
			{Name: "Lustgarten Foundation", URL: "https://www.lustgarten.org/"},
		},
	},
	{
		ID:          "oral",
		Name:        "Oral Cancer",
		Category:    "Head & Neck",
		Prevalence:  "54,000 new cases yearly",
		Overview:    "Oral cancer includes cancers of the mouth, tongue, lips, gums, and throat. It's often linked to tobacco and alcohol use, though HPV-related oral cancers are increasing, particularly in younger adults. Early detection significantly improves treatment outcomes, making regular dental checkups important for prevention and early diagnosis.",
		Symptoms:    []string{"Persistent mouth sores", "White or red patches", "Difficulty swallowing", "Persistent hoarseness", "Numbness in mouth", "Jaw pain or stiffness"},
		RiskFactors: []string{"Tobacco use", "Heavy alcohol consumption", "HPV infection", "Sun exposure (lip cancer)", "Poor oral hygiene", "Male gender"},
		Prevention:  "Avoid tobacco in all forms, limit alcohol consumption, practice good oral hygiene, use lip balm with SPF, get regular dental checkups, and consider HPV vaccination. Self-examination of the mouth and regular professional screenings are crucial.",
		Sources: []Source{
			{Name: "Oral Cancer Foundation", URL: "https://oralcancerfoundation.org/"},
			{Name: "Head and Neck Cancer Alliance", URL: "https://www.headandneck.org/"},
		},
	},
	{
		ID:          "leukemia",
		Name:        "Leukemia",
		Category:    "Blood Cancer",
		Prevalence:  "Most common childhood cancer",
		Overview:    "Leukemia is cancer of the blood-forming tissues, including bone marrow and lymphatic system. There are several types, including acute lymphoblastic leukemia (ALL), acute myeloid leukemia (AML), chronic lymphocytic leukemia (CLL), and chronic myeloid leukemia (CML). It's the most common cancer in children but also affects adults, with different types more common at different ages.",
		Symptoms:    []string{"Frequent infections", "Easy bruising or bleeding", "Fatigue and weakness", "Swollen lymph nodes", "Fever", "Bone pain"},
		RiskFactors: []string{"Previous cancer treatment", "Genetic disorders", "Radiation exposure", "Chemical exposure", "Smoking", "Family history"},
		Prevention:  "While most cases can't be prevented, avoid unnecessary radiation exposure, don't smoke, avoid exposure to chemicals like benzene, and maintain overall good health. For those with genetic predispositions, regular monitoring may be recommended.",
		Sources: []Source{
			{Name: "Leukemia & Lymphoma Society", URL: "https://www.lls.org/"},
			{Name: "Children's Leukemia Research Association", URL: "https://www.childrensleukemia.org/"},
		},
	},
}
