// Package api pkg/api/handlers.go holds the per-database CRUD routes and
// the scenario routes. These are thin glue: decode, call the client, encode.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/models"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
)

// Object storage handlers

func (s *APIServer) uploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemoryBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	info, err := s.clients.Files.Upload(r.Context(), name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Upload failed: %v", err)
		http.Error(w, "Upload failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, info)
}

func (s *APIServer) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := s.clients.Files.List(r.Context())
	if err != nil {
		log.Printf("List files failed: %v", err)
		http.Error(w, "List failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, files)
}

func (s *APIServer) downloadFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	rc, info, err := s.clients.Files.Download(r.Context(), name)
	if err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}

		log.Printf("Download failed: %v", err)
		http.Error(w, "Download failed", http.StatusInternalServerError)

		return
	}
	defer rc.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}

	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))

	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("Error streaming %q: %v", name, err)
	}
}

func (s *APIServer) deleteFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := s.clients.Files.Delete(r.Context(), name); err != nil {
		log.Printf("Delete failed: %v", err)
		http.Error(w, "Delete failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "file deleted"})
}

// Graph handlers

func (s *APIServer) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.clients.Social.CreateUser(r.Context(), req.Name, req.Age); err != nil {
		log.Printf("Create user failed: %v", err)
		http.Error(w, "Create user failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "user created"})
}

func (s *APIServer) createFriendship(w http.ResponseWriter, r *http.Request) {
	var req friendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" || req.Friend == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.clients.Social.CreateFriendship(r.Context(), req.User, req.Friend); err != nil {
		log.Printf("Create friendship failed: %v", err)
		http.Error(w, "Create friendship failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "friendship created"})
}

func (s *APIServer) getFriends(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	friends, err := s.clients.Social.FindFriends(r.Context(), name)
	if err != nil {
		log.Printf("Find friends failed: %v", err)
		http.Error(w, "Find friends failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, friendsResponse{User: name, Friends: friends})
}

func (s *APIServer) getFriendsOfFriends(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	friends, err := s.clients.Social.FindFriendsOfFriends(r.Context(), name)
	if err != nil {
		log.Printf("Find friends-of-friends failed: %v", err)
		http.Error(w, "Find friends-of-friends failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, friendsResponse{User: name, Friends: friends})
}

func (s *APIServer) getPath(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" || to == "" {
		http.Error(w, "Missing from/to parameters", http.StatusBadRequest)
		return
	}

	path, err := s.clients.Social.ShortestPath(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, graph.ErrNoPath) {
			http.Error(w, "No path between users", http.StatusNotFound)
			return
		}

		log.Printf("Shortest path failed: %v", err)
		http.Error(w, "Shortest path failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, pathResponse{From: from, To: to, Path: path})
}

func (s *APIServer) clearGraph(w http.ResponseWriter, r *http.Request) {
	if err := s.clients.Social.Clear(r.Context()); err != nil {
		log.Printf("Clear graph failed: %v", err)
		http.Error(w, "Clear graph failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "graph cleared"})
}

// Vector handlers

func (s *APIServer) addDocument(w http.ResponseWriter, r *http.Request) {
	var req addDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" || req.Text == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.clients.Search.AddDocument(r.Context(), req.ID, req.Text, req.Metadata); err != nil {
		log.Printf("Add document failed: %v", err)
		http.Error(w, "Add document failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "document indexed"})
}

func (s *APIServer) searchSimilar(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	results, err := s.clients.Search.SearchSimilar(r.Context(), req.Text, req.TopK)
	if err != nil {
		log.Printf("Search failed: %v", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, searchResponse{Query: req.Text, Results: results})
}

func (s *APIServer) getVectorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.clients.Search.Stats(r.Context())
	if err != nil {
		log.Printf("Vector stats failed: %v", err)
		http.Error(w, "Stats failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, stats)
}

// Columnar handlers

func (s *APIServer) recordSale(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.clients.Sales.RecordSale(r.Context(), &sale); err != nil {
		if errors.Is(err, columnar.ErrInvalidSale) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("Record sale failed: %v", err)
		http.Error(w, "Record sale failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "sale recorded"})
}

func (s *APIServer) seedSales(w http.ResponseWriter, r *http.Request) {
	n, err := s.clients.Sales.SeedSampleData(r.Context())
	if err != nil {
		log.Printf("Seed failed: %v", err)
		http.Error(w, "Seed failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, seedResponse{Inserted: n})
}

func (s *APIServer) getAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = columnar.QueryTotalByCategory
	}

	rows, err := s.clients.Sales.Analytics(r.Context(), query)
	if err != nil {
		if errors.Is(err, columnar.ErrUnknownQuery) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("Analytics failed: %v", err)
		http.Error(w, "Analytics failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, analyticsResponse{Query: query, Rows: rows})
}

func (s *APIServer) getColumnarStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.clients.Sales.TableStats(r.Context())
	if err != nil {
		log.Printf("Table stats failed: %v", err)
		http.Error(w, "Stats failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, stats)
}

// Scenario handlers

func (s *APIServer) addProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemoryBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.Unmarshal([]byte(r.FormValue("product")), &product); err != nil {
		http.Error(w, "Invalid product field", http.StatusBadRequest)
		return
	}

	var (
		image     io.Reader
		imageSize int64
		imageType string
	)

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		image = file
		imageSize = header.Size
		imageType = header.Header.Get("Content-Type")
	}

	created, err := s.shop.AddProduct(r.Context(), &product, image, imageSize, imageType)
	if err != nil {
		log.Printf("Add product failed: %v", err)
		http.Error(w, "Add product failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, created)
}

func (s *APIServer) findSimilarProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing q parameter", http.StatusBadRequest)
		return
	}

	topK, _ := strconv.Atoi(r.URL.Query().Get("top_k"))

	results, err := s.shop.FindSimilarProducts(r.Context(), query, topK)
	if err != nil {
		log.Printf("Similar products failed: %v", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, searchResponse{Query: query, Results: results})
}

func (s *APIServer) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req addCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.shop.AddCustomer(r.Context(), req.Name, req.Age, req.FriendOf); err != nil {
		log.Printf("Add customer failed: %v", err)
		http.Error(w, "Add customer failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "customer created"})
}

func (s *APIServer) recordScenarioSale(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.shop.RecordSale(r.Context(), &sale); err != nil {
		if errors.Is(err, columnar.ErrInvalidSale) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("Scenario sale failed: %v", err)
		http.Error(w, "Record sale failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, ackResponse{Success: true, Message: "sale recorded"})
}

func (s *APIServer) getScenarioAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = columnar.QueryTotalByCategory
	}

	rows, err := s.shop.SalesAnalytics(r.Context(), query)
	if err != nil {
		if errors.Is(err, columnar.ErrUnknownQuery) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("Scenario analytics failed: %v", err)
		http.Error(w, "Analytics failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, analyticsResponse{Query: query, Rows: rows})
}

func (s *APIServer) runDemo(w http.ResponseWriter, r *http.Request) {
	report, err := s.shop.RunDemo(r.Context())
	if err != nil {
		log.Printf("Demo workflow failed: %v", err)
		http.Error(w, "Demo workflow failed", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, report)
}
