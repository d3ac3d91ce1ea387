package libapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListBooks(ctx context.Context, sess *Session) ([]Book, error) {
	var resp payload[[]Book]
	if err := c.do(ctx, sess, http.MethodGet, "/books/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) SearchBooks(ctx context.Context, sess *Session, title string) ([]Book, error) {
	var resp payload[[]Book]
	path := withQuery("/books/search", url.Values{"title": {title}})
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) GetBook(ctx context.Context, sess *Session, id string) (Book, error) {
	var resp payload[Book]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/books/%s", id), nil, &resp); err != nil {
		return Book{}, err
	}
	return resp.get(), nil
}

func (c *Client) CreateBook(ctx context.Context, sess *Session, in BookInput) (Book, error) {
	var resp payload[Book]
	if err := c.do(ctx, sess, http.MethodPost, "/books", in, &resp); err != nil {
		return Book{}, err
	}
	return resp.get(), nil
}

func (c *Client) UpdateBook(ctx context.Context, sess *Session, id string, in BookInput) (Book, error) {
	var resp payload[Book]
	if err := c.do(ctx, sess, http.MethodPut, pathf("/books/%s", id), in, &resp); err != nil {
		return Book{}, err
	}
	return resp.get(), nil
}

func (c *Client) DeleteBook(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, sess, http.MethodDelete, pathf("/books/%s", id), nil, nil)
}
