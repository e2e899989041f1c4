package usecase

import (
	"context"
	"fmt"
	"strings"

	"tutorconnect/internal/domain/service"
	"tutorconnect/pkg/errors"
)

type AssistantUseCase struct {
	generator service.TextGenerator
}

func NewAssistantUseCase(generator service.TextGenerator) *AssistantUseCase {
	return &AssistantUseCase{
		generator: generator,
	}
}

type CurriculumInput struct {
	Subject        string
	GradeLevel     string
	Duration       string
	AdditionalInfo string
}

func (uc *AssistantUseCase) GenerateCurriculum(ctx context.Context, input CurriculumInput) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Create a detailed curriculum plan for the following:
Subject: %s
Grade Level: %s
Duration: %s
`, input.Subject, input.GradeLevel, input.Duration)
	if input.AdditionalInfo != "" {
		fmt.Fprintf(&sb, "Additional Information: %s\n", input.AdditionalInfo)
	}
	sb.WriteString(`
Please provide:
1. Course Overview
2. Learning Objectives (5-7 key objectives)
3. Weekly Breakdown (with topics and subtopics for each week)
4. Recommended Resources
5. Assessment Methods

Format the response in a clear, structured manner that a tutor can directly use.`)

	return uc.generate(ctx, sb.String())
}

type AssignmentInput struct {
	Topic          string
	Difficulty     string
	AssignmentType string
	GradeLevel     string
	AdditionalInfo string
}

func (uc *AssistantUseCase) GenerateAssignment(ctx context.Context, input AssignmentInput) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Create a detailed %s assignment for students:
Topic: %s
Difficulty Level: %s
`, input.AssignmentType, input.Topic, input.Difficulty)
	if input.GradeLevel != "" {
		fmt.Fprintf(&sb, "Grade Level: %s\n", input.GradeLevel)
	}
	if input.AdditionalInfo != "" {
		fmt.Fprintf(&sb, "Additional Information: %s\n", input.AdditionalInfo)
	}
	sb.WriteString(`
Please provide:
1. Assignment Title
2. Learning Objectives
3. Instructions (clear and detailed)
4. Questions/Tasks (appropriate for the difficulty level)
5. Grading Rubric
6. Estimated Time to Complete

Make it engaging and educational. Format the response clearly.`)

	return uc.generate(ctx, sb.String())
}

type LessonPlanInput struct {
	Topic              string
	Duration           string
	GradeLevel         string
	LearningObjectives string
	AdditionalInfo     string
}

func (uc *AssistantUseCase) GenerateLessonPlan(ctx context.Context, input LessonPlanInput) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Create a detailed lesson plan for:
Topic: %s
Duration: %s
`, input.Topic, input.Duration)
	if input.GradeLevel != "" {
		fmt.Fprintf(&sb, "Grade Level: %s\n", input.GradeLevel)
	}
	if input.LearningObjectives != "" {
		fmt.Fprintf(&sb, "Learning Objectives: %s\n", input.LearningObjectives)
	}
	if input.AdditionalInfo != "" {
		fmt.Fprintf(&sb, "Additional Information: %s\n", input.AdditionalInfo)
	}
	sb.WriteString(`
Please provide:
1. Lesson Title
2. Learning Objectives
3. Materials Needed
4. Introduction/Hook (to engage students)
5. Main Activities (with timing)
6. Practice Exercises
7. Closure/Summary
8. Assessment/Homework

Format it in a way that's easy to follow during an actual lesson.`)

	return uc.generate(ctx, sb.String())
}

func (uc *AssistantUseCase) generate(ctx context.Context, prompt string) (string, error) {
	content, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", errors.Internal("Failed to generate content", err)
	}

	return content, nil
}
