// Command bookden is a command line front end for the catalog data-access
// layer. It talks to the catalog service configured in config.toml and keeps
// working against the built-in fixture dataset when the service is down.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hoanghai1803/bookden/internal/config"
	"github.com/hoanghai1803/bookden/internal/fixture"
	"github.com/hoanghai1803/bookden/internal/models"
	"github.com/hoanghai1803/bookden/internal/recommend"
	"github.com/hoanghai1803/bookden/internal/remote"
	"github.com/hoanghai1803/bookden/internal/repository"
	"github.com/hoanghai1803/bookden/internal/session"
)

// app bundles everything a subcommand needs.
type app struct {
	repo       *repository.Repository
	reconciler *recommend.Reconciler
	user       session.User
}

func main() {
	global := flag.NewFlagSet("bookden", flag.ExitOnError)
	configPath := global.String("config", "config.toml", "path to config file")
	userID := global.String("user", "1", "acting user id")
	role := global.String("role", "", "acting user role (\"admin\" unlocks catalog writes)")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	api := remote.New(cfg.API.BaseURL, cfg.Timeout(), cfg.API.RateLimitRPS)
	repo := repository.New(api, fixture.Default(), repository.DeletePolicy(cfg.Fallback.DeletePolicy))
	suggester := recommend.NewClient(cfg.RecommendationsBase(), cfg.Timeout())

	a := &app{
		repo:       repo,
		reconciler: recommend.NewReconciler(suggester, repo),
		user:       session.User{ID: *userID, Role: *role},
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch cmd {
	case "books":
		a.handleBooks(ctx, sub, args[2:])
	case "lists":
		a.handleLists(ctx, sub, args[2:])
	case "reviews":
		a.handleReviews(ctx, sub, args[2:])
	case "recommend":
		a.handleRecommend(ctx, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func (a *app) handleBooks(ctx context.Context, sub string, args []string) {
	switch sub {
	case "list":
		books, err := a.repo.ListBooks(ctx)
		if err != nil {
			log.Fatalf("list books: %v", err)
		}
		printJSON(books)
	case "show":
		fs := flag.NewFlagSet("books show", flag.ExitOnError)
		id := fs.String("id", "", "book id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("book id is required")
		}

		book, err := a.repo.GetBook(ctx, *id)
		if err != nil {
			log.Fatalf("show book: %v", err)
		}
		printJSON(book)
	case "add":
		a.requireAdmin()
		fs := flag.NewFlagSet("books add", flag.ExitOnError)
		title := fs.String("title", "", "title")
		author := fs.String("author", "", "author")
		cover := fs.String("cover", "", "cover image URL")
		desc := fs.String("description", "", "description")
		genre := fs.String("genre", "", "genre")
		year := fs.Int("year", 0, "published year")
		_ = fs.Parse(args)
		if *title == "" || *author == "" {
			log.Fatal("title and author are required")
		}

		book, err := a.repo.CreateBook(ctx, models.Book{
			Title:         *title,
			Author:        *author,
			CoverImage:    *cover,
			Description:   *desc,
			Genre:         *genre,
			PublishedYear: *year,
		})
		if err != nil {
			log.Fatalf("add book: %v", err)
		}
		printJSON(book)
	case "update":
		a.requireAdmin()
		fs := flag.NewFlagSet("books update", flag.ExitOnError)
		id := fs.String("id", "", "book id")
		title := fs.String("title", "", "title")
		author := fs.String("author", "", "author")
		cover := fs.String("cover", "", "cover image URL")
		desc := fs.String("description", "", "description")
		genre := fs.String("genre", "", "genre")
		year := fs.Int("year", 0, "published year")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("book id is required")
		}

		// Only flags the caller actually passed become part of the patch,
		// so an omitted flag leaves that field untouched.
		var patch models.BookPatch
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				patch.Title = title
			case "author":
				patch.Author = author
			case "cover":
				patch.CoverImage = cover
			case "description":
				patch.Description = desc
			case "genre":
				patch.Genre = genre
			case "year":
				patch.PublishedYear = year
			}
		})

		book, err := a.repo.UpdateBook(ctx, *id, patch)
		if err != nil {
			log.Fatalf("update book: %v", err)
		}
		printJSON(book)
	case "remove":
		a.requireAdmin()
		fs := flag.NewFlagSet("books remove", flag.ExitOnError)
		id := fs.String("id", "", "book id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("book id is required")
		}

		if err := a.repo.DeleteBook(ctx, *id); err != nil {
			log.Fatalf("remove book: %v", err)
		}
		fmt.Println("deleted")
	default:
		log.Fatal("usage: bookden books <list|show|add|update|remove>")
	}
}

func (a *app) handleLists(ctx context.Context, sub string, args []string) {
	switch sub {
	case "list":
		lists, err := a.repo.ListReadingLists(ctx, a.user.ID)
		if err != nil {
			log.Fatalf("list reading lists: %v", err)
		}
		printJSON(lists)
	case "show":
		fs := flag.NewFlagSet("lists show", flag.ExitOnError)
		id := fs.String("id", "", "reading list id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("reading list id is required")
		}

		list, err := a.repo.GetReadingList(ctx, *id, a.user.ID)
		if err != nil {
			log.Fatalf("show reading list: %v", err)
		}
		printJSON(list)
	case "add":
		fs := flag.NewFlagSet("lists add", flag.ExitOnError)
		name := fs.String("name", "", "list name")
		desc := fs.String("description", "", "description")
		books := fs.String("books", "", "comma-separated book ids")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		list, err := a.repo.CreateReadingList(ctx, models.ReadingList{
			UserID:      a.user.ID,
			Name:        *name,
			Description: *desc,
			BookIDs:     splitIDs(*books),
		})
		if err != nil {
			log.Fatalf("add reading list: %v", err)
		}
		printJSON(list)
	case "update":
		fs := flag.NewFlagSet("lists update", flag.ExitOnError)
		id := fs.String("id", "", "reading list id")
		name := fs.String("name", "", "list name")
		desc := fs.String("description", "", "description")
		books := fs.String("books", "", "comma-separated book ids")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("reading list id is required")
		}

		var patch models.ReadingListPatch
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				patch.Name = name
			case "description":
				patch.Description = desc
			case "books":
				ids := splitIDs(*books)
				patch.BookIDs = &ids
			}
		})

		list, err := a.repo.UpdateReadingList(ctx, *id, a.user.ID, patch)
		if err != nil {
			log.Fatalf("update reading list: %v", err)
		}
		printJSON(list)
	case "remove":
		fs := flag.NewFlagSet("lists remove", flag.ExitOnError)
		id := fs.String("id", "", "reading list id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("reading list id is required")
		}

		if err := a.repo.DeleteReadingList(ctx, *id, a.user.ID); err != nil {
			log.Fatalf("remove reading list: %v", err)
		}
		fmt.Println("deleted")
	default:
		log.Fatal("usage: bookden lists <list|show|add|update|remove>")
	}
}

func (a *app) handleReviews(ctx context.Context, sub string, args []string) {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("reviews list", flag.ExitOnError)
		bookID := fs.String("book-id", "", "book id")
		_ = fs.Parse(args)
		if *bookID == "" {
			log.Fatal("book-id is required")
		}

		reviews, err := a.repo.ListReviews(ctx, *bookID)
		if err != nil {
			log.Fatalf("list reviews: %v", err)
		}
		printJSON(reviews)
	case "add":
		fs := flag.NewFlagSet("reviews add", flag.ExitOnError)
		bookID := fs.String("book-id", "", "book id")
		rating := fs.Int("rating", 0, "rating from 1 to 5")
		comment := fs.String("comment", "", "review text")
		name := fs.String("name", "", "display name")
		_ = fs.Parse(args)
		if *bookID == "" {
			log.Fatal("book-id is required")
		}
		if *rating < 1 || *rating > 5 {
			log.Fatal("rating must be between 1 and 5")
		}

		review, err := a.repo.CreateReview(ctx, models.Review{
			BookID:   *bookID,
			UserID:   a.user.ID,
			UserName: *name,
			Rating:   *rating,
			Comment:  *comment,
		})
		if err != nil {
			log.Fatalf("add review: %v", err)
		}
		printJSON(review)
	default:
		log.Fatal("usage: bookden reviews <list|add>")
	}
}

func (a *app) handleRecommend(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	genre := fs.String("genre", "", "genre or free-text interests")
	limit := fs.Int("limit", 5, "max suggestions")
	_ = fs.Parse(args)

	recs, err := a.reconciler.Recommend(ctx, a.user.ID, *genre, *limit)
	if err != nil {
		log.Fatalf("recommend: %v", err)
	}
	printJSON(recs)
}

// requireAdmin exits unless the acting user carries the admin role. Catalog
// writes are admin-only; reading lists and reviews are not.
func (a *app) requireAdmin() {
	if !a.user.IsAdmin() {
		log.Fatal("catalog writes require -role admin")
	}
}

func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Println("bookden [flags] <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  books list|show|add|update|remove")
	fmt.Println("  lists list|show|add|update|remove")
	fmt.Println("  reviews list|add")
	fmt.Println("  recommend -genre <text> [-limit n]")
	fmt.Println("global flags: -config, -user, -role")
}
