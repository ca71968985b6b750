package kb

// Company knowledge for Metabull Universe. The raw text is handed to the
// generative fallback as grounding context; the entries below drive the
// keyword intents.
const metabullText = `
Company Name: Metabull Universe
Type: Corporate Service Provider (Creative + IT + Marketing)
Founded: 5 years ago
Founder & CEO: Neeraj Soni
Headquarters: MP nagar. zone-2 ,Bhopal, Madhya Pradesh (Near Rani Kamlapati Station, Maharana Pratap Nagar)

Email: metabull2@gmail.com
Contact Number: +91 8982285510
Employees: 20+
Active Clients: 100+ per month

--- Services ---
1. Advertisement Services (ADS)
2. Video Editing: Ads, Social Media, Application Ads
3. Graphic Designing: Logos, Branding, Custom Design
4. Web Development: Static, Dynamic, Fully Functional Websites
5. Account Handling: Business account handling
6. Social Media Management: Posts, Growth, Strategy

--- Pricing ---
Video Editing:
- ai video = 600-700
- high ai quality video = 1000-1200
- ai model video = 1500-2000
- ugc video = 2500-3000
- white board animation video = 1000-1500
- video editing: 1 min = 500, bulk project = 2000-2500
- spoke person video = 5000-10000+
- Social Media Videos: 5 min = 1000, 10 min = 2000, 15+ min = 2500
- Application Ads: 1 min = 800

Web Development:
- Static Website = 4000 (single page + free domain)
- Dynamic Normal Website = 7000 (multiple pages + free domain)
- Fully Functional Aesthetic Website = 8000-15000 (Payment gateway + Database)

Graphic Designing:
- Logo: 600, 2D logo 800-1000, 3D logo 1500+
- Other designs: Custom pricing

Ads:
- Multi-platform Ads: Depends on client budget & needs

Social Media Management:
- Single Account = 5000/month (3 posts/day)

Target Clients: Startups, Enterprises, Promotional clients, Individual Professionals
`

// Shown whenever an entry carries no suggestions of its own.
var metabullDefaultSuggestions = []string{
	"Web dev price?",
	"UGC video rate?",
	"Logo 3D price?",
}

// metabullEntries is the production rule set. Order matters: the first
// matching entry answers, so e.g. "office location?" hits "about" (which
// also claims location words) before "location". Keep the declared order
// stable unless the content owners change it.
var metabullEntries = []Entry{
	{
		Topic: "about",
		Patterns: []string{
			`\bmetabull(\s+universe)?\b`,
			`\b(name|company)\b`,
			`\btype\b`,
			`\bfounded\b`,
			`\byears?\b`,
			`\bfounder\b|\bceo\b|\bneeraj\b`,
			`\bteam\b|\bemployees?\b|\bclients?\b`,
			`\btarget\b|\bindustr(y|ies)\b|\bhq\b|\boffice\b|\blocation\b|\bbhopal\b`,
		},
		Answer: "*Metabull Universe* — Creative + IT + Marketing provider; founded 5 years ago by " +
			"*Neeraj Soni*. Team 20+, 100+ active clients/month. HQ: MP Nagar Zone-2, Bhopal.\n" +
			"📧 metabull2@gmail.com | ☎️ +91 8982285510",
		Suggestions: []string{"Services kya hain?", "Pricing overview?", "Office location?"},
	},
	{
		Topic: "services",
		Patterns: []string{
			`\bservices?\b`,
			`\boffer\b`,
			`\bprovide\b`,
			`\badvertis(e|ement|ing)\b`,
			`\bvideo\s*editing\b`,
			`\bgraphic\b`,
			`\bweb\s*dev(elopment)?\b`,
			`\bsocial\s*media\b`,
			`\baccount\s*handling\b`,
		},
		Answer: "*Services:*\n• Ads\n• Video Editing\n• Graphic Designing (Logo/Branding)\n" +
			"• Web Development (Static/Dynamic/Full-stack)\n• Account Handling\n• Social Media Management",
		Suggestions: []string{"Web dev prices?", "UGC video ka rate?", "Logo 3D price?"},
	},
	{
		Topic: "pricing_web",
		Patterns: []string{
			`\bwebsite?\b|\bweb(dev)?\b|\bsite\b|\bstatic\b|\bdynamic\b|\bpayment\s*gateway\b|\bdatabase\b`,
			`\bweb.*(price|pricing|cost|rate|charges)\b`,
			`\b(price|pricing|cost|rate|charges).*web\b`,
		},
		Answer: "*Web Dev Prices:*\n• Static (1 page + free domain): ₹4,000\n" +
			"• Dynamic (multi-page + free domain): ₹7,000\n" +
			"• Fully Functional (Payment + DB): ₹8,000–₹15,000",
		Suggestions: []string{"E-commerce bana sakte ho?", "Timeline kitna hoga?", "Hosting/domain details?"},
	},
	{
		Topic: "pricing_video",
		Patterns: []string{
			`\bvideo\b|\bedit(ing)?\b|\bugc\b|\bwhite\s*board\b|\bwhiteboard\b|\bspokes?person\b`,
			`\bapplication\s*ad\b|\bapp\s*ad\b|\bai\s*video\b|\bhigh\s*ai\b|\bai\s*model\b`,
			`\b5\s*min\b|\b10\s*min\b|\b15\+?\s*min\b`,
		},
		Answer: "*Video Editing Prices:*\n" +
			"• AI: 600–700 | High-AI: 1000–1200 | AI-Model: 1500–2000\n" +
			"• UGC: 2500–3000 | Whiteboard: 1000–1500 | 1-min edit: 500\n" +
			"• Bulk: 2000–2500 | Spokesperson: 5000–10000+\n" +
			"• Social: 5m=1000, 10m=2000, 15m+=2500 | App Ad (1m)=800",
		Suggestions: []string{"Voiceover add hoga?", "Revision policy?", "Delivery time kitna?"},
	},
	{
		Topic: "pricing_graphics",
		Patterns: []string{
			`\b(logo|graphic|branding|design)\b`,
			`\b2d\b|\b3d\b`,
			`\b(logo|graphic|branding|design).*(price|pricing|cost|rate|charges)\b`,
			`\b(price|pricing|cost|rate|charges).*(logo|graphic|branding|design)\b`,
		},
		Answer: "*Graphic/Logo Prices:*\n• Logo: ₹600 | 2D: ₹800–₹1000 | 3D: ₹1500+\n" +
			"• Other designs: custom as per requirement",
		Suggestions: []string{"Brand kit milega?", "Logo delivery time?", "Source files milenge?"},
	},
	{
		Topic: "pricing_smm",
		Patterns: []string{
			`\bsmm\b|\bsocial\s*media\s*manage(ment)?\b|\baccount\s*handling\b`,
			`\bposts?\s*/?\s*day\b|\bmonthly\b`,
		},
		Answer:      "*Social Media Management:* ₹5000/month (3 posts/day)",
		Suggestions: []string{"Content calendar doge?", "Growth strategy?", "Ad spend include hai?"},
	},
	{
		Topic: "location",
		Patterns: []string{
			`\b(location|address|where|office|bhopal|headquarters|hq)\b`,
			`\brani\s*kamlapati\b|\bmp\s*nagar\b|\bzone-?2\b`,
		},
		Answer:      "📍 *HQ:* MP Nagar Zone-2, Bhopal (Near Rani Kamlapati Station, Maharana Pratap Nagar).",
		Suggestions: []string{"Remote kaam possible?", "On-site meeting?", "Service areas?"},
	},
	{
		Topic: "contact",
		Patterns: []string{
			`\b(contact|call|phone|mobile|email|reach|support)\b`,
			`\bwhats?app\b`,
		},
		Answer:      "📧 *Email:* metabull2@gmail.com | ☎️ *Call:* +91 8982285510 (WhatsApp bhi chalega).",
		Suggestions: []string{"Free consultation book karein?", "Requirement share karein?", "Working hours?"},
	},
	{
		Topic: "ads",
		Patterns: []string{
			`\bads?\b|\badvertis(e|ement|ing)\b|\bgoogle\s*ads\b|\bmeta\s*ads\b|\bfacebook\s*ads\b|\binstagram\s*ads\b`,
		},
		Answer:      "📢 *Multi-platform Ads* — pricing depends on budget & goals. Strategy discuss kar lete hain!",
		Suggestions: []string{"Estimated CPL/CPA?", "Creative + copy include hai?", "Targeting strategy?"},
	},
}

// Metabull builds the production knowledge table. The entries are
// compile-time constants, so an error here is a build-content bug and
// the caller should treat it as fatal.
func Metabull() (*Table, error) {
	return New(metabullEntries, metabullText, metabullDefaultSuggestions)
}
