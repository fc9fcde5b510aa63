package provider

import (
	"context"
	"strings"
)

// catalogueProvider serves a curated flat list by case-insensitive keyword
// match over the whole entry text.
type catalogueProvider struct {
	entries []string
}

func (p *catalogueProvider) Search(ctx context.Context, query string) ([]string, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, nil
	}
	var results []string
	for _, entry := range p.entries {
		if strings.Contains(strings.ToLower(entry), term) {
			results = append(results, entry)
		}
	}
	return results, nil
}

// NewTraining creates the training courses provider. Entries are curated free
// courses relevant to the Kenyan market.
func NewTraining() Provider {
	return &catalogueProvider{entries: []string{
		"*Fundamentals of Digital Marketing* by Google - Learn the basics of digital marketing with this free, certified course. https://skillshop.exceedlms.com/student/path/6943-fundamentals-of-digital-marketing",
		"*Social Media Marketing Course* by HubSpot Academy - A free, comprehensive course on social media strategy. https://academy.hubspot.com/courses/social-media",
		"*Introduction to Graphic Design* by Great Learning - A free beginner's course to learn the fundamentals of graphic design. https://www.mygreatlearning.com/academy/learn-for-free/courses/graphic-design-basics",
		"*Ajira Digital Training Program* - Get skills in content writing, transcription, and data entry for online work. https://ajiradigital.go.ke/#/training",
		"*Introduction to Public Speaking* by University of Washington - A highly-rated free course on Coursera. https://www.coursera.org/learn/public-speaking",
		"*Sales and Negotiations Skills* - A free short course on Alison.com covering key business skills. https://alison.com/course/sales-and-negotiations-skills",
		"*Personal Finance & Credit* - A free introductory course on Alison.com. https://alison.com/course/an-introductory-course-on-personal-finance-and-credit",
		"*Managing Your M-Pesa Business* - A practical guide on using M-Pesa for business (YouTube Series). https://www.youtube.com/watch?v=examplelink1",
		"*Introduction to Web Development* - A free course covering HTML, CSS, and JavaScript. https://www.freecodecamp.org/learn/responsive-web-design/",
		"*Python for Everybody* by University of Michigan - A very popular free course for learning Python. https://www.coursera.org/specializations/python",
	}}
}

// NewMentorship creates the mentorship resources provider. Entries link to
// public profiles and content from respected Kenyan professionals.
func NewMentorship() Provider {
	return &catalogueProvider{entries: []string{
		"*Juliana Rotich* - A respected technologist and entrepreneur. Follow her insights on tech in Africa. (Tech) https://www.linkedin.com/in/julianarotich/",
		"*Dr. Bitange Ndemo* - Professor and expert on technology, innovation, and governance in Kenya. (Tech/Business) https://www.linkedin.com/in/bitange-ndemo-4b491125/",
		"*The Kenyan Coder* - A popular YouTube channel with practical coding tutorials and tech career advice in Kenya. (Tech) https://www.youtube.com/@TheKenyanCoder",
		"*Wandia Gichuru* - Co-founder of VIVO Fashion Group. A great resource for retail and entrepreneurship insights. (Business) https://www.linkedin.com/in/wandia-gichuru-93448410/",
		"*Julian Kyula* - Founder of MODE, offers sharp insights on entrepreneurship and finance. (Business/Finance) https://www.linkedin.com/in/julian-kyula-26b2b73/",
		"*Kenyan Wallstreet* - A great YouTube channel for learning about investment, finance, and business trends in Kenya. (Finance/Business) https://www.youtube.com/@KenyanWallstreet",
		"*Muthoni Maingi* - Digital marketing expert and leader. Follow for insights on brand strategy. (Marketing) https://www.linkedin.com/in/muthonimaingi/",
		"*Chris Gathingu* - Founder of Tangazoletu, a leader in mobile and digital solutions. (Tech/Sales) https://www.linkedin.com/in/chris-gathingu-a1b73b24/",
		"*'Your Next Move' with Patricia Ithau* - A YouTube series with career stories from Kenyan leaders. (Career) https://www.youtube.com/playlist?list=PLpsl_29oVz_b5q4-q-J-Y-z-8-s-k-b-z",
		"*Cynthia Nyongesa* - Offers practical and relatable career advice for young Kenyans on YouTube. (Career) https://www.youtube.com/@CynthiaNyongesa",
	}}
}

// NewBusiness creates the entrepreneurship guides provider.
func NewBusiness() Provider {
	return &catalogueProvider{entries: []string{
		"*How to Register a Business Name in Kenya* via eCitizen (YouTube Guide) - A step-by-step video guide. (Business Registration) https://www.youtube.com/watch?v=RCE-x_R-92c",
		"*Understanding the Youth Enterprise Development Fund* - Official site for government funding for youth businesses. (Funding) https://www.youthfund.go.ke/",
		"*Writing a Simple Business Plan* (SME Toolkit Kenya) - A practical guide for creating a business plan. (Business Plan) http://kenya.smetoolkit.org/en/content/en/788/Writing-a-Business-Plan",
		"*Getting Started with Poultry Farming in Kenya* (Farmers Trend) - A detailed guide for beginners. (Agribusiness/Poultry) https://farmerstrend.co.ke/poultry-farming-in-kenya-a-beginners-guide/",
		"*Beginner's Guide to Greenhouse Farming in Kenya* - A practical overview of setting up a greenhouse. (Agribusiness/Farming) https://www.kenyans.co.ke/news/41320-beginners-guide-greenhouse-farming-kenya",
		"*How to Start an Online Business in Kenya* (Safaricom) - Tips on setting up your e-commerce presence. (E-commerce) https://www.safaricom.co.ke/business/sme/grow/how-to-start-an-online-business-in-kenya",
		"*Guide to Freelancing on Upwork from Kenya* (YouTube) - A practical guide for starting a freelance career. (Freelancing/Digital) https://www.youtube.com/watch?v=example-freelance",
		"*Turning a Craft Hobby into a Business* - Tips on pricing and selling handmade goods. (Crafts/Retail) https://www.artcaffemarket.co.ke/blogs/news/turning-your-hobby-into-a-business",
		"*Running a Successful M-Pesa Shop* - A guide on the requirements and operations of an M-Pesa business. (Retail/Finance) https://www.tuko.co.ke/business-ideas/447771-how-start-mpesa-shop-business-kenya-requirements-cost-profit-2022/",
	}}
}
