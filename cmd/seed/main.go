// Command seed wipes and reloads the portfolio collections with the initial
// content set. Intended as a one-time loader, not a runtime component.
package main

import (
	"context"
	"log"
	"time"

	"portfolio-backend/internal/portfolio/config"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DatabaseName)
	now := time.Now().UTC()

	collections := map[string][]interface{}{
		"profiles":   profileSeed(now),
		"skills":     skillSeed(now),
		"projects":   projectSeed(now),
		"experience": experienceSeed(now),
		"education":  educationSeed(now),
	}

	log.Println("Starting database seeding...")
	for name, docs := range collections {
		coll := db.Collection(name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
		if len(docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			log.Fatalf("Failed to seed %s: %v", name, err)
		}
		log.Printf("Inserted %d documents into %s", len(docs), name)
	}
	log.Println("Database seeding completed successfully")
}

func profileSeed(now time.Time) []interface{} {
	return []interface{}{bson.M{
		"name":       "Devang Shah",
		"email":      "shahdevang1910@gmail.com",
		"tagline":    "Building playful, human-centered tools with clean code and curiosity.",
		"about":      "I'm a developer who loves turning fuzzy ideas into crisp, shippable experiences. My happy place: dark mode UIs, tiny details, and shipping fast.",
		"location":   "India",
		"github":     "https://github.com",
		"linkedin":   "https://linkedin.com/in/devang-shah",
		"created_at": now,
		"updated_at": now,
	}}
}

func skillSeed(now time.Time) []interface{} {
	entries := []struct{ category, name string }{
		{"languages", "TypeScript"},
		{"languages", "Python"},
		{"languages", "JavaScript"},
		{"languages", "SQL"},
		{"frontend", "React"},
		{"frontend", "Next.js"},
		{"frontend", "Tailwind"},
		{"frontend", "shadcn/ui"},
		{"backend", "Node.js"},
		{"backend", "Express"},
		{"backend", "FastAPI"},
		{"backend", "REST"},
		{"cloud", "AWS"},
		{"cloud", "Vercel"},
		{"cloud", "GitHub Actions"},
		{"cloud", "Supabase"},
		{"data", "Pandas"},
		{"data", "scikit-learn"},
		{"data", "OpenAI API"},
	}

	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, bson.M{
			"category":   e.category,
			"name":       e.name,
			"created_at": now,
		})
	}
	return docs
}

func projectSeed(now time.Time) []interface{} {
	return []interface{}{
		bson.M{
			"title":       "Apex: F1 Supply Chain Explorer",
			"summary":     "Interactive visualizations of logistics, parts flow, and team operations.",
			"description": "Built comprehensive supply chain visualization platform for Formula 1 teams, mapping entire lifecycle from suppliers to race day operations.",
			"period":      "2024",
			"stack":       []string{"Next.js", "Tailwind", "Recharts", "TypeScript"},
			"tags":        []string{"Web", "DataViz"},
			"category":    "Web",
			"cover":       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=800&h=400&fit=crop",
			"links": bson.M{
				"repo": "https://github.com/devang-shah/apex-f1",
				"live": "https://apex-f1.vercel.app",
				"case": "#",
			},
			"details": bson.M{
				"problem":  "Fans and teams lack visibility into complex supply chain dynamics behind race day operations.",
				"approach": "Mapped entire lifecycle and supplier networks with interactive charts and real-time data visualization.",
				"result":   "Clear, explorable interface that makes complex logistics accessible to non-technical audiences.",
				"features": []string{"Real-time supplier tracking", "Interactive flow diagrams", "Performance analytics"},
			},
			"featured":   true,
			"created_at": now,
			"updated_at": now,
		},
		bson.M{
			"title":       "Workout Logger",
			"summary":     "Minimalist fitness tracker with charts and progress streaks.",
			"description": "Clean, intuitive workout tracking app focused on simplicity and visual progress representation.",
			"period":      "2023",
			"stack":       []string{"Next.js", "SQLite", "Chart.js", "Tailwind"},
			"tags":        []string{"Web", "Mobile"},
			"category":    "Web",
			"cover":       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=400&fit=crop",
			"links": bson.M{
				"repo": "https://github.com/devang-shah/workout-logger",
				"live": "https://workout-logger.vercel.app",
				"case": "#",
			},
			"details": bson.M{
				"problem":  "Existing fitness apps were overcomplicated with too many features and poor UX.",
				"approach": "Designed minimalist interface focusing on core tracking with visual progress indicators.",
				"result":   "Achieved 95% user retention rate with clean, distraction-free workout logging.",
				"features": []string{"Streak tracking", "Progress charts", "Workout templates"},
			},
			"featured":   true,
			"created_at": now,
			"updated_at": now,
		},
		bson.M{
			"title":       "Code Snippet Manager",
			"summary":     "Developer tool for organizing and sharing code snippets across teams.",
			"description": "Collaborative platform for developers to store, organize, and share reusable code snippets.",
			"period":      "2023",
			"stack":       []string{"React", "MongoDB", "Express", "Prism.js"},
			"tags":        []string{"Web", "DevTools"},
			"category":    "Web",
			"cover":       "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800&h=400&fit=crop",
			"links": bson.M{
				"repo": "https://github.com/devang-shah/snippet-manager",
				"live": "#",
				"case": "#",
			},
			"details": bson.M{
				"problem":  "Developers waste time searching for previously written code across projects.",
				"approach": "Created centralized snippet management with tagging, search, and team collaboration.",
				"result":   "Teams reported 40% faster development cycles with improved code reusability.",
				"features": []string{"Syntax highlighting", "Team sharing", "Advanced search"},
			},
			"featured":   false,
			"created_at": now,
			"updated_at": now,
		},
	}
}

func experienceSeed(now time.Time) []interface{} {
	return []interface{}{
		bson.M{
			"company":  "Tech Innovations Co.",
			"title":    "Full Stack Developer",
			"period":   "2023 - Present",
			"location": "Remote",
			"achievements": []string{
				"Built scalable web applications serving 10K+ daily active users",
				"Reduced page load times by 40% through optimization techniques",
				"Led migration from legacy PHP to modern React/Node.js stack",
				"Mentored 3 junior developers on best practices and code quality",
			},
			"order":      3,
			"created_at": now,
		},
		bson.M{
			"company":  "Startup Hub",
			"title":    "Frontend Developer",
			"period":   "2022 - 2023",
			"location": "Mumbai, India",
			"achievements": []string{
				"Developed responsive React applications with 98% mobile compatibility",
				"Implemented design system reducing development time by 30%",
				"Collaborated with UX team to improve user engagement by 25%",
				"Integrated third-party APIs and payment processing systems",
			},
			"order":      2,
			"created_at": now,
		},
		bson.M{
			"company":  "Digital Agency",
			"title":    "Junior Developer",
			"period":   "2021 - 2022",
			"location": "Pune, India",
			"achievements": []string{
				"Created 15+ client websites using modern web technologies",
				"Maintained 99% uptime across all deployed applications",
				"Implemented automated testing reducing bugs by 50%",
				"Participated in code reviews and improved team coding standards",
			},
			"order":      1,
			"created_at": now,
		},
	}
}

func educationSeed(now time.Time) []interface{} {
	return []interface{}{bson.M{
		"degree":     "Bachelor of Computer Science",
		"school":     "University of Technology",
		"period":     "2017 - 2021",
		"location":   "Mumbai, India",
		"created_at": now,
	}}
}
