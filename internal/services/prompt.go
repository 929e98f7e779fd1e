package services

import (
	"fmt"
	"strings"
)

// SystemInstruction names the model's role and pins the reply format.
const SystemInstruction = "You are an expert ATS (Applicant Tracking System) and human recruiter resume analyzer. " +
	"You provide critical, actionable feedback. Respond ONLY with the requested JSON object."

const fence = "```"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt embeds the resume and job description into the fixed
// analysis template. Pure function of its inputs.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf("Analyze the following resume against the provided job description.\n"+
		"Provide a detailed, critical, and constructive analysis.\n"+
		"\n"+
		"**Resume Text:**\n"+
		"%[1]stext\n"+
		"%[2]s\n"+
		"%[1]s\n"+
		"\n"+
		"**Job Description:**\n"+
		"%[1]stext\n"+
		"%[3]s\n"+
		"%[1]s\n"+
		"\n"+
		"**Instructions:**\n"+
		"Respond ONLY with a valid JSON object. Do not include any text before or after the JSON object.\n"+
		"The JSON object must contain the following keys:\n"+
		"- \"matchScore\": An integer score from 0 to 100 representing the overall alignment, considering skills, experience, keywords, and qualifications. Be realistic.\n"+
		"- \"rationale\": A brief string explaining the main reasons for the given matchScore.\n"+
		"- \"qualificationsMatch\": A string summarizing how well the resume meets the most critical qualifications mentioned in the job description.\n"+
		"- \"strengths\": A list of strings highlighting the resume's most relevant strengths for this specific job description.\n"+
		"- \"missingSkills\": A list of strings detailing important skills, tools, technologies, certifications, or specific experiences mentioned in the job description but clearly missing from the resume. Be specific.\n"+
		"- \"improvementAreas\": A list of strings suggesting specific, actionable areas where the resume could be improved to better match this job description.\n"+
		"- \"suggestedEdits\": A list of strings providing concrete, actionable suggestions for specific changes or additions to the resume text.\n"+
		"- \"missingKeywords\": A concise list (max 5-7) of important keywords from the job description not found in the resume.\n"+
		"\n"+
		"Ensure all list values are strings. Ensure the entire output is a single, valid JSON object.",
		fence, neutralizeFences(resumeText), neutralizeFences(jobDescription))
}

// neutralizeFences keeps user text from closing the template's own code
// fences and corrupting the instruction section.
func neutralizeFences(text string) string {
	return strings.ReplaceAll(text, fence, "'''")
}
