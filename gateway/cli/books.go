package cli

import (
	"fmt"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *console) booksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage the catalog",
	}
	cmd.AddCommand(
		c.booksListCmd(),
		c.booksShowCmd(),
		c.booksAddCmd(),
		c.booksUpdateCmd(),
		c.booksDeleteCmd(),
	)
	return cmd
}

func (c *console) booksListCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"search"},
		Short:   "List books, optionally matching a title",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			books, err := c.catalog.SearchBooks(cmd.Context(), c.sess, title)
			if err != nil {
				return err
			}
			return printBooks(c.out, books)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title to search for")
	return cmd
}

func (c *console) booksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show BOOK_ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.catalog.GetBook(cmd.Context(), c.sess, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s by %s (%d)\n", b.Title, b.Author, b.PublicationYear)
			fmt.Fprintf(c.out, "publisher: %s  genre: %s  isbn: %s\n", orDash(b.Publisher), orDash(b.Genre), orDash(b.ISBN))
			fmt.Fprintf(c.out, "copies: %d/%d  shelf: %s\n", b.AvailableCopies, b.TotalCopies, orDash(b.ShelfLocation))
			if b.Summary != "" {
				fmt.Fprintln(c.out, b.Summary)
			}
			return nil
		},
	}
}

func bookFlags(fs *pflag.FlagSet, req *model.BookRequest) {
	fs.StringVar(&req.Title, "title", "", "title")
	fs.StringVar(&req.Author, "author", "", "author")
	fs.StringVar(&req.ISBN, "isbn", "", "ISBN")
	fs.StringVar(&req.Publisher, "publisher", "", "publisher")
	fs.StringVar(&req.Genre, "genre", "", "genre")
	fs.IntVar(&req.PublicationYear, "year", 0, "publication year")
	fs.IntVar(&req.TotalCopies, "copies", 1, "total copies")
	fs.StringVar(&req.ShelfLocation, "shelf", "", "shelf location")
	fs.StringVar(&req.Summary, "summary", "", "summary")
}

func (c *console) booksAddCmd() *cobra.Command {
	var req model.BookRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := c.catalog.CreateBook(cmd.Context(), c.sess, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Added %s (%s)\n", b.Title, b.ID)
			return c.printCatalog(cmd)
		},
	}
	bookFlags(cmd.Flags(), &req)
	return cmd
}

// booksUpdateCmd starts from the stored book; only the given flags change it.
func (c *console) booksUpdateCmd() *cobra.Command {
	var req model.BookRequest
	cmd := &cobra.Command{
		Use:   "update BOOK_ID",
		Short: "Edit a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.catalog.GetBook(cmd.Context(), c.sess, args[0])
			if err != nil {
				return err
			}
			merged := bookRequest(current)
			fs := cmd.Flags()
			overlay(fs, "title", &merged.Title, req.Title)
			overlay(fs, "author", &merged.Author, req.Author)
			overlay(fs, "publisher", &merged.Publisher, req.Publisher)
			overlay(fs, "genre", &merged.Genre, req.Genre)
			overlay(fs, "year", &merged.PublicationYear, req.PublicationYear)
			overlay(fs, "copies", &merged.TotalCopies, req.TotalCopies)
			overlay(fs, "shelf", &merged.ShelfLocation, req.ShelfLocation)
			overlay(fs, "summary", &merged.Summary, req.Summary)

			b, err := c.catalog.UpdateBook(cmd.Context(), c.sess, args[0], merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated %s (%s)\n", b.Title, b.ID)
			return c.printCatalog(cmd)
		},
	}
	bookFlags(cmd.Flags(), &req)
	return cmd
}

func (c *console) booksDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete BOOK_ID",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !c.confirm(fmt.Sprintf("Delete book %s?", args[0])) {
				fmt.Fprintln(c.out, "Aborted")
				return nil
			}
			if err := c.catalog.DeleteBook(cmd.Context(), c.sess, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deleted %s\n", args[0])
			return c.printCatalog(cmd)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

func (c *console) printCatalog(cmd *cobra.Command) error {
	books, err := c.catalog.ListBooks(cmd.Context(), c.sess)
	if err != nil {
		return err
	}
	return printBooks(c.out, books)
}

func bookRequest(b libapi.Book) model.BookRequest {
	return model.BookRequest{
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Publisher:       b.Publisher,
		Genre:           b.Genre,
		PublicationYear: b.PublicationYear,
		TotalCopies:     b.TotalCopies,
		ShelfLocation:   b.ShelfLocation,
		Summary:         b.Summary,
	}
}

func overlay[T any](fs *pflag.FlagSet, name string, dst *T, v T) {
	if fs.Changed(name) {
		*dst = v
	}
}

func (c *console) reviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write book reviews",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reviews, err := c.catalog.ListReviews(cmd.Context(), c.sess)
			if err != nil {
				return err
			}
			return printReviews(c.out, reviews)
		},
	}

	var req model.ReviewRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Review a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.catalog.CreateReview(cmd.Context(), c.sess, req); err != nil {
				return err
			}
			reviews, err := c.catalog.ListReviews(cmd.Context(), c.sess)
			if err != nil {
				return err
			}
			return printReviews(c.out, reviews)
		},
	}
	add.Flags().StringVar(&req.BookID, "book", "", "book id")
	add.Flags().StringVar(&req.UserID, "user", "", "reviewer id, the signed in account when empty")
	add.Flags().IntVar(&req.Rating, "rating", 0, "rating from 1 to 5")
	add.Flags().StringVar(&req.Review, "text", "", "review text")

	cmd.AddCommand(list, add)
	return cmd
}
