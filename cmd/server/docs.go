package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           DashTrack API
// @version         0.1.0
// @description     Delivery work-session tracking and earnings analytics.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
