package services

import (
	"time"

	"portfolio_api/internal/models"
)

func strPtr(s string) *string {
	return &s
}

// SampleProjects is inserted into an empty project collection, in order.
func SampleProjects() []models.Project {
	return []models.Project{
		{
			Title:       "Realtime Chat App",
			Description: "A full‑stack chat app with websockets, auth, and group chats.",
			Tags:        []string{"React", "FastAPI", "WebSocket", "MongoDB"},
			Github:      strPtr("https://github.com/your-handle/realtime-chat"),
			Live:        strPtr("https://chat.example.com"),
			Image:       "https://images.unsplash.com/photo-1556157382-97eda2d62296?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "Dev Portfolio Boilerplate",
			Description: "Modern portfolio template with 3D hero, blog, and CMS-ready backend.",
			Tags:        []string{"Vite", "Tailwind", "Spline", "Framer Motion"},
			Github:      strPtr("https://github.com/your-handle/portfolio"),
			Live:        strPtr("https://portfolio.example.com"),
			Image:       "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "AI Code Reviewer",
			Description: "PR bot that reviews diffs, flags issues, and suggests fixes.",
			Tags:        []string{"Python", "LLM", "GitHub Actions"},
			Github:      strPtr("https://github.com/your-handle/ai-reviewer"),
			Live:        nil,
			Image:       "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=1200&auto=format&fit=crop",
		},
	}
}

// SamplePosts is inserted into an empty blogpost collection, in order.
// Every post is stamped with now.
func SamplePosts(now time.Time) []models.BlogPost {
	now = now.UTC()
	return []models.BlogPost{
		{
			Title:       "How I build modern, fast developer portfolios",
			Slug:        "build-fast-portfolios",
			Excerpt:     "From Spline 3D hero sections to blazing‑fast Vite builds — my approach.",
			Content:     "I focus on DX and UX: Vite + React, Tailwind for speed, Spline for delight, and FastAPI + Mongo for content...",
			Tags:        []string{"portfolio", "react", "fastapi"},
			CoverImage:  "https://images.unsplash.com/photo-1498050108023-c5249f4df085?q=80&w=1200&auto=format&fit=crop",
			PublishedAt: &now,
		},
		{
			Title:       "Shipping backend features fast with FastAPI",
			Slug:        "shipping-with-fastapi",
			Excerpt:     "Type hints, Pydantic, and speed — why FastAPI is my go‑to.",
			Content:     "FastAPI lets me write clean, typed endpoints quickly. Combined with MongoDB helpers, I can ship features in hours...",
			Tags:        []string{"python", "fastapi", "backend"},
			CoverImage:  "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?q=80&w=1200&auto=format&fit=crop",
			PublishedAt: &now,
		},
	}
}
