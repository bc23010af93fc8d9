package cli

import (
	soupmarket "github.com/Ismael0303/SOUP-Market-sub001"
)

// Options defines the command line options.
type Options struct {
	ConfigURL string `short:"c" long:"config" description:"yaml config file URL"`
	soupmarket.ClientOptions

	Login  LoginCommand  `command:"login" description:"log in and store the token"`
	Logout struct{}      `command:"logout" description:"remove the stored token"`
	Status struct{}      `command:"status" description:"show whether a token is stored"`
	List   struct{}      `command:"list" description:"list reviews"`
	Get    GetCommand    `command:"get" description:"get a review"`
	Create CreateCommand `command:"create" description:"create a review"`
}

type LoginCommand struct {
	Username string `short:"U" long:"username" description:"username" required:"true"`
	Password string `short:"P" long:"password" description:"password" required:"true"`
}

type GetCommand struct {
	ID int `short:"i" long:"id" description:"review id" required:"true"`
}

type CreateCommand struct {
	Rating  int    `short:"r" long:"rating" description:"rating from 1 to 5" required:"true"`
	Comment string `short:"m" long:"comment" description:"review comment"`
	Product int    `short:"p" long:"product" description:"product id"`
}
