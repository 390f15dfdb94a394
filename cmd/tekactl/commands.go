package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"teka/pkg/client"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var commands = map[string]command{
	"signup":        {"Open an account", runSignUp},
	"signin":        {"Sign in and print the access token", runSignIn},
	"categories":    {"List categories", runCategories},
	"cities":        {"List cities", runCities},
	"products":      {"Search active listings", runProducts},
	"product":       {"Show a listing", runProduct},
	"publish":       {"Publish a listing with photos", runPublish},
	"withdraw":      {"Deactivate one of your listings", runWithdraw},
	"qr":            {"Write the share QR code of a listing", runQR},
	"favorite":      {"Toggle a listing in your favorites", runFavorite},
	"favorites":     {"List your favorites", runFavorites},
	"contact":       {"Open the conversation with a listing's seller", runContact},
	"conversations": {"List your conversations", runConversations},
	"messages":      {"Show the messages of a conversation", runMessages},
	"send":          {"Send a message", runSend},
	"seller":        {"Show a seller's store", runSeller},
	"me":            {"Show your profile", runMe},
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	return errors.Wrapf(fs.Parse(args), "failed to parse %s flags", fs.Name())
}

func uuidArg(fs *flag.FlagSet, what string) (uuid.UUID, error) {
	if fs.NArg() < 1 {
		return uuid.Nil, errors.Errorf("%s is required", what)
	}

	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", what)
	}

	return id, nil
}

func runSignUp(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password, 6 characters minimum")
	kind := fs.String("kind", "individual", "Account kind: individual or professional")
	phone := fs.String("phone", "", "Phone number, digits only")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	profile, err := a.client.SignUp(ctx, client.SignUpRequest{
		FullName:    *name,
		Email:       *email,
		Password:    *password,
		AccountKind: *kind,
		PhoneNumber: *phone,
	})
	if err != nil {
		return err
	}

	return a.printSignedIn(profile)
}

func runSignIn(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	profile, err := a.client.SignIn(ctx, *email, *password)
	if err != nil {
		return err
	}

	return a.printSignedIn(profile)
}

func (a *app) printSignedIn(profile *client.Profile) error {
	if profile != nil {
		fmt.Fprintf(os.Stderr, "Signed in as %s\n", profile.FullName)
	}
	_, err := fmt.Fprintf(a.out, "export %s=%s\n", envToken, a.client.Session().Token())

	return errors.WithStack(err)
}

func runCategories(ctx context.Context, a *app, _ []string) error {
	categories, err := a.client.ListCategories(ctx)
	if err != nil {
		return err
	}

	return a.print(categories)
}

func runCities(ctx context.Context, a *app, _ []string) error {
	cities, err := a.client.ListCities(ctx)
	if err != nil {
		return err
	}

	return a.print(cities)
}

func runProducts(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	category := fs.String("category", "", "Category id")
	city := fs.String("city", "", "City")
	query := fs.String("q", "", "Text searched in titles and descriptions")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	filter := client.ProductFilter{City: *city, Text: *query}
	if *category != "" {
		categoryID, err := uuid.Parse(*category)
		if err != nil {
			return errors.Wrap(err, "invalid category")
		}
		filter.CategoryID = categoryID
	}

	products, err := a.client.ListProducts(ctx, filter)
	if err != nil {
		return err
	}

	return a.print(products)
}

func runProduct(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("product", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	productID, err := uuidArg(fs, "product id")
	if err != nil {
		return err
	}

	detail, err := a.client.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return a.print(detail)
}

func runPublish(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	title := fs.String("title", "", "Title")
	description := fs.String("description", "", "Description")
	price := fs.Float64("price", 0, "Price")
	currency := fs.String("currency", "CDF", "Currency: CDF or USD")
	category := fs.String("category", "", "Category id")
	city := fs.String("city", "", "City")
	condition := fs.String("condition", "good", "Condition: new, like_new, good or for_repair")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(*category)
	if err != nil {
		return errors.Wrap(err, "invalid category")
	}

	product := client.NewProduct{
		Title:       *title,
		Description: *description,
		Price:       *price,
		Currency:    strings.ToUpper(*currency),
		CategoryID:  categoryID,
		City:        *city,
		Condition:   *condition,
	}

	// remaining arguments are photo files
	for _, name := range fs.Args() {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "failed to open photo %s", name)
		}
		defer f.Close()

		product.Photos = append(product.Photos, client.Photo{
			Filename:    filepath.Base(name),
			ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(name))),
			Content:     f,
		})
	}

	created, err := a.client.CreateProduct(ctx, product)
	if err != nil {
		return err
	}

	if created.SkippedPhotos > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d photo(s) could not be uploaded\n", created.SkippedPhotos)
	}

	return a.print(created.Product)
}

func runWithdraw(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("withdraw", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	productID, err := uuidArg(fs, "product id")
	if err != nil {
		return err
	}

	return a.client.DeactivateProduct(ctx, productID)
}

func runQR(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	output := fs.String("o", "", "Output PNG file, defaults to teka-<id>.png")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	productID, err := uuidArg(fs, "product id")
	if err != nil {
		return err
	}

	png, err := a.client.ProductQR(ctx, productID)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = "teka-" + productID.String() + ".png"
	}

	return errors.Wrapf(os.WriteFile(path, png, 0o644), "failed to write %s", path)
}

func runFavorite(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("favorite", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	productID, err := uuidArg(fs, "product id")
	if err != nil {
		return err
	}

	favorited, err := a.client.ToggleFavorite(ctx, productID)
	if err != nil {
		return err
	}

	if favorited {
		_, err = fmt.Fprintln(a.out, "favorited")
	} else {
		_, err = fmt.Fprintln(a.out, "unfavorited")
	}

	return errors.WithStack(err)
}

func runFavorites(ctx context.Context, a *app, _ []string) error {
	products, err := a.client.ListFavorites(ctx)
	if err != nil {
		return err
	}

	return a.print(products)
}

func runContact(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	productID, err := uuidArg(fs, "product id")
	if err != nil {
		return err
	}

	conversation, err := a.client.ContactSeller(ctx, productID)
	if err != nil {
		return err
	}

	return a.print(conversation)
}

func runConversations(ctx context.Context, a *app, _ []string) error {
	conversations, err := a.client.ListConversations(ctx)
	if err != nil {
		return err
	}

	return a.print(conversations)
}

func runMessages(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("messages", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	conversationID, err := uuidArg(fs, "conversation id")
	if err != nil {
		return err
	}

	messages, err := a.client.ListMessages(ctx, conversationID)
	if err != nil {
		return err
	}

	for _, message := range messages {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", message.CreatedAt.Format("2006-01-02 15:04"), message.SenderID, message.Content)
	}

	return nil
}

func runSend(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	conversationID, err := uuidArg(fs, "conversation id")
	if err != nil {
		return err
	}

	message, err := a.client.SendMessage(ctx, conversationID, strings.Join(fs.Args()[1:], " "))
	if err != nil {
		return err
	}

	return a.print(message)
}

func runSeller(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("seller", flag.ExitOnError)
	all := fs.Bool("all", false, "Include withdrawn listings")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	sellerID, err := uuidArg(fs, "seller id")
	if err != nil {
		return err
	}

	view, err := a.client.GetSeller(ctx, sellerID, !*all)
	if err != nil {
		return err
	}

	return a.print(view)
}

func runMe(ctx context.Context, a *app, _ []string) error {
	profile, err := a.client.Me(ctx)
	if err != nil {
		return err
	}

	return a.print(profile)
}
