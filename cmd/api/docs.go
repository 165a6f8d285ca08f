package main

// @title           Food Back-office API
// @version         1.0
// @description     API de gestão de pedidos, pré-vendas e faturamento para negócios de alimentação

// @contact.name   API Support
// @contact.email  suporte@foodbackoffice.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
