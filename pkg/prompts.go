// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type PromptArgumentSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type PromptSpec struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Arguments   []PromptArgumentSpec `json:"arguments"`
}

// PromptCatalog lists all prompt templates of the server, used both for
// prompts/list registration and the get_server_prompts tool.
func PromptCatalog() []PromptSpec {
	return []PromptSpec{
		{
			Name:        "analyze_tech_trends",
			Description: "Generate a prompt for analyzing technology trends in a specific area",
			Arguments: []PromptArgumentSpec{
				{Name: "technology_area", Description: "Technology area to analyze (e.g., AI, blockchain)", Required: true},
				{Name: "time_period", Description: "Time period for analysis (day, week, month, year)", Required: false},
				{Name: "detail_level", Description: "Level of detail (brief, standard, comprehensive)", Required: false},
			},
		},
		{
			Name:        "project_research",
			Description: "Generate a prompt for researching project development approaches",
			Arguments: []PromptArgumentSpec{
				{Name: "project_type", Description: "Type of project (e.g., web application, mobile app)", Required: true},
				{Name: "tech_stack", Description: "Technology stack preference", Required: false},
				{Name: "focus_area", Description: "Area of focus (e.g., best practices, performance)", Required: false},
			},
		},
		{
			Name:        "competitive_analysis",
			Description: "Generate a prompt for competitive analysis in a specific domain",
			Arguments: []PromptArgumentSpec{
				{Name: "domain", Description: "Domain to analyze (e.g., software tools, AI frameworks)", Required: true},
				{Name: "timeframe", Description: "Time scope (recent, trending, established)", Required: false},
				{Name: "analysis_depth", Description: "Level of analysis (overview, detailed, comprehensive)", Required: false},
			},
		},
		{
			Name:        "learning_roadmap",
			Description: "Generate a prompt for creating a learning roadmap",
			Arguments: []PromptArgumentSpec{
				{Name: "skill_area", Description: "Skill or technology area to learn", Required: true},
				{Name: "experience_level", Description: "Current experience level (beginner, intermediate, advanced)", Required: false},
				{Name: "learning_style", Description: "Preferred learning approach (practical, theoretical, project-based)", Required: false},
			},
		},
		{
			Name:        "code_review_assistant",
			Description: "Generate a prompt for code review assistance",
			Arguments: []PromptArgumentSpec{
				{Name: "language", Description: "Programming language", Required: false},
				{Name: "review_focus", Description: "Focus area (security, performance, maintainability, general)", Required: false},
				{Name: "project_context", Description: "Type of project (open source, enterprise, startup)", Required: false},
			},
		},
	}
}

// RegisterPrompts adds all prompt templates to the MCP server.
func RegisterPrompts(s *server.MCPServer) {
	renderers := map[string]func(args map[string]string) string{
		"analyze_tech_trends":   renderTechTrendsPrompt,
		"project_research":      renderProjectResearchPrompt,
		"competitive_analysis":  renderCompetitiveAnalysisPrompt,
		"learning_roadmap":      renderLearningRoadmapPrompt,
		"code_review_assistant": renderCodeReviewPrompt,
	}
	for _, spec := range PromptCatalog() {
		options := []mcp.PromptOption{
			mcp.WithPromptDescription(spec.Description),
		}
		for _, argument := range spec.Arguments {
			argumentOptions := []mcp.ArgumentOption{
				mcp.ArgumentDescription(argument.Description),
			}
			if argument.Required {
				argumentOptions = append(argumentOptions, mcp.RequiredArgument())
			}
			options = append(options, mcp.WithArgument(argument.Name, argumentOptions...))
		}
		render := renderers[spec.Name]
		description := spec.Description
		s.AddPrompt(
			mcp.NewPrompt(spec.Name, options...),
			func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return mcp.NewGetPromptResult(
					description,
					[]mcp.PromptMessage{
						mcp.NewPromptMessage(
							mcp.RoleUser,
							mcp.NewTextContent(render(request.Params.Arguments)),
						),
					},
				), nil
			},
		)
	}
}

func argOrDefault(args map[string]string, name string, defaultValue string) string {
	if value, ok := args[name]; ok && value != "" {
		return value
	}
	return defaultValue
}

func renderTechTrendsPrompt(args map[string]string) string {
	technologyArea := argOrDefault(args, "technology_area", "AI")
	timePeriod := argOrDefault(args, "time_period", "month")
	detailLevel := argOrDefault(args, "detail_level", "comprehensive")
	return fmt.Sprintf(`Analyze the current trends in %s over the past %s.

Please provide a %s analysis that includes:

1. **Recent Developments**: Key developments, releases, or breakthroughs
2. **Popular Projects**: Trending repositories and tools gaining traction
3. **Community Interest**: What the developer community is focusing on
4. **Market Impact**: How these trends might affect the industry
5. **Future Outlook**: Predictions for where this technology is heading

Use the available tools to:
- Search HackerNews for recent discussions about %s
- Find trending GitHub repositories related to %s
- Use server sampling to discover popular repositories in %s

Focus on providing actionable insights and concrete examples.`,
		technologyArea, timePeriod, detailLevel,
		technologyArea, technologyArea, technologyArea,
	)
}

func renderProjectResearchPrompt(args map[string]string) string {
	projectType := argOrDefault(args, "project_type", "web application")
	techStack := argOrDefault(args, "tech_stack", "modern")
	focusArea := argOrDefault(args, "focus_area", "best practices")
	return fmt.Sprintf(`Research the current best approaches for developing a %s using %s technologies, with a focus on %s.

Please provide a comprehensive guide that includes:

1. **Technology Selection**: Recommended tools, frameworks, and libraries
2. **Architecture Patterns**: Best architectural approaches and design patterns
3. **Development Practices**: Coding standards, testing strategies, and workflows
4. **Popular Examples**: Successful projects and repositories to learn from
5. **Community Resources**: Active communities, tutorials, and documentation

Use the available tools to:
- Find trending repositories related to %s and %s
- Search HackerNews for discussions about %s in %s
- Sample popular repositories to identify common patterns and practices

Provide specific examples and actionable recommendations.`,
		projectType, techStack, focusArea,
		techStack, projectType,
		focusArea, projectType,
	)
}

func renderCompetitiveAnalysisPrompt(args map[string]string) string {
	domain := argOrDefault(args, "domain", "software tools")
	timeframe := argOrDefault(args, "timeframe", "recent")
	analysisDepth := argOrDefault(args, "analysis_depth", "detailed")
	return fmt.Sprintf(`Conduct a %s competitive analysis of %s %s.

Please provide an analysis that covers:

1. **Market Leaders**: Identify the top players and their key strengths
2. **Emerging Solutions**: New or trending alternatives gaining traction
3. **Feature Comparison**: Key features, capabilities, and differentiators
4. **Community Adoption**: Developer/user adoption metrics and sentiment
5. **Technology Assessment**: Technical advantages and limitations
6. **Market Positioning**: How different solutions position themselves

Use the available tools to:
- Search for %s discussions about %s on HackerNews
- Find trending repositories in the %s space
- Sample popular projects to understand feature sets and approaches
- Gather community sentiment and adoption indicators

Focus on providing objective insights and clear comparisons.`,
		analysisDepth, timeframe, domain,
		timeframe, domain, domain,
	)
}

func renderLearningRoadmapPrompt(args map[string]string) string {
	skillArea := argOrDefault(args, "skill_area", "programming")
	experienceLevel := argOrDefault(args, "experience_level", "beginner")
	learningStyle := argOrDefault(args, "learning_style", "practical")
	return fmt.Sprintf(`Create a %s learning roadmap for %s suitable for a %s learner.

Please develop a structured learning path that includes:

1. **Prerequisites**: Essential background knowledge and skills needed
2. **Learning Phases**: Progressive stages from basics to advanced concepts
3. **Practical Projects**: Hands-on projects to reinforce learning at each stage
4. **Resources**: Best tutorials, documentation, courses, and community resources
5. **Assessment Milestones**: How to measure progress and validate learning
6. **Real-world Applications**: How these skills apply in professional contexts

Use the available tools to:
- Find popular %s repositories to understand current practices
- Search HackerNews for learning discussions and resource recommendations
- Sample educational repositories and tutorial projects
- Identify trending tools and technologies in the %s space

Focus on creating a practical, actionable roadmap with specific next steps.`,
		learningStyle, skillArea, experienceLevel,
		skillArea, skillArea,
	)
}

func renderCodeReviewPrompt(args map[string]string) string {
	language := argOrDefault(args, "language", "any")
	reviewFocus := argOrDefault(args, "review_focus", "general")
	projectContext := argOrDefault(args, "project_context", "open source")
	return fmt.Sprintf(`Assist with reviewing %s code in a %s context, focusing on %s.

Please provide a thorough code review that covers:

1. **Code Quality**: Readability, maintainability, and adherence to best practices
2. **%s Considerations**: Specific focus on %s aspects
3. **Architecture Review**: Design patterns, structure, and scalability
4. **Performance Analysis**: Efficiency, optimization opportunities, and bottlenecks
5. **Security Assessment**: Potential vulnerabilities and security best practices
6. **Testing Coverage**: Test completeness and quality

Use the available tools to:
- Research current best practices for %s development
- Find examples of high-quality %s repositories
- Search for recent discussions about %s in %s
- Sample popular projects to understand industry standards

Provide specific, actionable feedback with examples and recommendations.`,
		language, projectContext, reviewFocus,
		capitalize(reviewFocus), reviewFocus,
		language, language,
		reviewFocus, language,
	)
}
