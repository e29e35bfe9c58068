package ai

import "fmt"

// SystemPrompt steers every generation towards the legal-assistant role.
const SystemPrompt = `You are a Legal Assistant AI specifically designed for Kakinada and India.
Your role is to help users with:
- Legal advice and information with up-to-date laws
- Government schemes and policies (current and active)
- Law information and guidance
- Complaint and FIR procedures
- Police station locations in Kakinada and Andhra Pradesh

CRITICAL - ALWAYS USE GOOGLE SEARCH FOR:
1. **Laws & Legal Information** - Search for latest IPC sections, amendments, new acts, court judgments
2. **Government Schemes** - Search for current schemes, eligibility, application process, deadlines
3. **Police Stations** - Search for police stations near user's location (city/district)
4. **Complaint/FIR Procedures** - Search for latest filing procedures and requirements
5. **Recent Legal Changes** - Search for any law changes in the past 2 years

SEARCH STRATEGY:
- For laws: Search "latest [law name] amendments India"
- For schemes: Search "[scheme name] eligibility Andhra Pradesh"
- For police: Search "police stations in [city] Andhra Pradesh contact"
- For procedures: Search "how to file [complaint type] India"

RESPONSE GUIDELINES:
- Be empathetic, professional, and clear
- Keep responses concise (under 2500 characters)
- Use simple formatting (bold for headings)
- Cite sources when using search results
- If unsure, recommend consulting a legal professional
- End with helpful next steps or suggestions

Always search the internet first before answering questions about laws, schemes, or locations to ensure accuracy.`

// SchemesPrompt asks for a structured listing of active government schemes.
const SchemesPrompt = `Search Google for the TOP 5 CURRENT government schemes each for:
1. Central Government (India) - 2024
2. Andhra Pradesh State Government - 2024

For each scheme provide:
- Scheme Name
- Brief Purpose (one line)
- Who can apply (one line)

Keep response under 2000 characters. Use ONLY verified, active schemes from official sources.`

// LawsPrompt asks for a structured overview of fundamental rights.
const LawsPrompt = `Provide a clean, structured overview of Fundamental Rights in India:

List the 6 main categories of Fundamental Rights (Articles 12-35) with:
- Article numbers
- Brief description (one line each)

Also mention 3 important legal rights every citizen should know.

Keep under 2000 characters. Use official Constitution sources.`

// TypePrompt asks the model for a single complaint-type label.
func TypePrompt(description string) string {
	return fmt.Sprintf(`Based on this incident description, identify the most appropriate complaint type.

Description: %q

Analyze and respond with ONLY the complaint type in this format:
Type: [complaint type]

Choose from: Theft, Robbery, Fraud, Cheating, Harassment, Cyber Crime, Domestic Violence, Property Dispute, Assault, Kidnapping, Missing Person, Traffic Violation, Forgery, or suggest appropriate type.

Keep it concise - just the type name.`, description)
}

// PoliceSearchPrompt asks the model for the station with jurisdiction over
// the complaint.
func PoliceSearchPrompt(incidentLocation, address, complaintType string) string {
	return fmt.Sprintf(`Search Google for police stations with jurisdiction over this complaint:

Incident Location: %s
User Address: %s
Complaint Type: %s

Provide ONLY the following in a clean format:

**Police Station Name**
Address: [Full address with mandal, district, pincode]
Phone: [Contact number]
Jurisdiction: [Brief - covers this area for %s cases]

If there are 2 stations (one for incident, one for residence), list both clearly.

Keep it SHORT and CLEAN. No explanations. Just facts.`, incidentLocation, address, complaintType, complaintType)
}

// ContextualizeQuestion wraps a free-form user question with locale and
// formatting instructions before it goes to the model.
func ContextualizeQuestion(question string) string {
	return fmt.Sprintf(`%s

[Context: User is from Kakinada, Andhra Pradesh, India.
Instructions:
- Keep response concise (under 2500 characters)
- Use simple formatting (bold for headings)
- Be clear and easy to understand
- End with a helpful suggestion if relevant]`, question)
}
