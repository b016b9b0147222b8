// loadgen, fikra API'sine sentetik trafik üreten komut satırı aracıdır.
//
// Akış:
// 1. N kullanıcı kaydı (signup) + login
//    Server AUTH_AUTO_CONFIRM=true ile çalışmalı — email doğrulaması atlanır.
//    Tüm istekler tek IP'den geldiği için RATE_LIMIT_MAX_ATTEMPTS de
//    yüksek tutulmalı (ör: 10000).
// 2. Her kullanıcı M post paylaşır
// 3. Her kullanıcı rastgele post'lara like/dislike verir
//    (aynı post'a ikinci aynı reaction 409 döner — bu beklenen bir durumdur
//    ve ayrı sayılır)
// 4. İlk kullanıcının ilk post'u için analytics spot-check yapılır
//
// Kullanım:
//
//	go run ./cmd/loadgen -url http://localhost:8000 -users 10 -posts 3 -reactions 20
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// apiResponse, server'ın standart yanıt zarfı.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// account, login olmuş bir sentetik kullanıcı.
type account struct {
	email string
	token string
	posts []string // bu kullanıcının oluşturduğu post ID'leri
}

type client struct {
	baseURL string
	http    *http.Client
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "server base URL")
	users := flag.Int("users", 10, "number of synthetic users")
	posts := flag.Int("posts", 3, "posts per user")
	reactions := flag.Int("reactions", 20, "reaction attempts per user")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	log.SetFlags(log.Ltime)
	rng := rand.New(rand.NewSource(*seed))

	c := &client{
		baseURL: *baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	runID := time.Now().UnixNano() % 1_000_000

	// ─── 1. Signup + Login ───
	accounts := make([]*account, 0, *users)
	for i := 0; i < *users; i++ {
		a := &account{email: fmt.Sprintf("loadgen-%d-%d@example.com", runID, i)}
		username := fmt.Sprintf("loadgen_%d_%d", runID, i)

		if err := c.signup(username, a.email, "loadgen-password"); err != nil {
			log.Fatalf("signup failed for %s: %v", a.email, err)
		}

		token, err := c.login(a.email, "loadgen-password")
		if err != nil {
			log.Fatalf("login failed for %s (is the server running with AUTH_AUTO_CONFIRM=true?): %v", a.email, err)
		}
		a.token = token
		accounts = append(accounts, a)
	}
	log.Printf("created and logged in %d users", len(accounts))

	// ─── 2. Post oluştur ───
	var allPosts []string
	for _, a := range accounts {
		for j := 0; j < *posts; j++ {
			postID, err := c.createPost(a.token, fmt.Sprintf("loadgen post %d from %s", j, a.email))
			if err != nil {
				log.Fatalf("create post failed: %v", err)
			}
			a.posts = append(a.posts, postID)
			allPosts = append(allPosts, postID)
		}
	}
	log.Printf("created %d posts", len(allPosts))

	// ─── 3. Rastgele reaction trafiği ───
	var ok, conflicts, failures int
	for _, a := range accounts {
		for j := 0; j < *reactions; j++ {
			postID := allPosts[rng.Intn(len(allPosts))]
			kind := "like"
			if rng.Intn(2) == 0 {
				kind = "dislike"
			}

			status, err := c.react(a.token, postID, kind)
			switch {
			case err != nil:
				failures++
				log.Printf("reaction error: %v", err)
			case status == http.StatusOK:
				ok++
			case status == http.StatusConflict:
				// Aynı reaction tekrar denendi — state machine doğru çalışıyor.
				conflicts++
			default:
				failures++
				log.Printf("unexpected status %d for %s on %s", status, kind, postID)
			}
		}
	}
	log.Printf("reactions: %d applied, %d conflicts (repeats), %d failures", ok, conflicts, failures)

	// ─── 4. Analytics spot-check ───
	owner := accounts[0]
	if len(owner.posts) > 0 {
		today := time.Now().Format("2006-01-02")
		buckets, err := c.analytics(owner.token, owner.posts[0], today, today)
		if err != nil {
			log.Fatalf("analytics check failed: %v", err)
		}
		log.Printf("analytics for post %s today: %s", owner.posts[0], buckets)
	}

	if failures > 0 {
		log.Fatalf("run finished with %d failures", failures)
	}
	log.Println("run finished successfully")
}

// ─── HTTP helpers ───

func (c *client) signup(username, email, password string) error {
	_, _, err := c.do("POST", "/api/auth/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	return err
}

func (c *client) login(email, password string) (string, error) {
	_, data, err := c.do("POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	return tokens.AccessToken, nil
}

func (c *client) createPost(token, content string) (string, error) {
	_, data, err := c.do("POST", "/api/posts", token, map[string]string{"content": content})
	if err != nil {
		return "", err
	}

	var post struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &post); err != nil {
		return "", fmt.Errorf("failed to parse post response: %w", err)
	}
	return post.ID, nil
}

// react, status code'u da döner — 409 Conflict caller için hata değildir.
func (c *client) react(token, postID, kind string) (int, error) {
	status, _, err := c.doRaw("POST", fmt.Sprintf("/api/posts/%s/%s", postID, kind), token, nil)
	if err != nil {
		return 0, err
	}
	return status, nil
}

func (c *client) analytics(token, postID, from, to string) (string, error) {
	path := fmt.Sprintf("/api/analytics/posts/%s?start_date=%s&end_date=%s", postID, from, to)
	_, data, err := c.do("GET", path, token, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// do, isteği gönderir ve success=false ise hata döner.
func (c *client) do(method, path, token string, body any) (int, json.RawMessage, error) {
	status, data, err := c.doRaw(method, path, token, body)
	if err != nil {
		return 0, nil, err
	}
	if status >= 400 {
		return status, nil, fmt.Errorf("%s %s: status %d: %s", method, path, status, data)
	}

	var resp apiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return status, nil, fmt.Errorf("%s %s: invalid response: %w", method, path, err)
	}
	return status, resp.Data, nil
}

// doRaw, HTTP isteğini yapar ve ham body'yi döner — status yorumu caller'a ait.
func (c *client) doRaw(method, path, token string, body any) (int, []byte, error) {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return 0, nil, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, buf.Bytes(), nil
}
