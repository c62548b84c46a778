package template

// 원본 대시보드 레이아웃. 값 주입 지점만 템플릿 액션으로 치환됨.
const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Ultimate SIEM Dashboard</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/3.9.1/chart.min.js"></script>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background: linear-gradient(135deg, #1a1a1a 0%, #2d2d2d 100%);
            color: white;
            min-height: 100vh;
        }
        .header {
            background: linear-gradient(135deg, #2c2c2c 0%, #3c3c3c 100%);
            padding: 30px;
            border-radius: 15px;
            margin-bottom: 30px;
            text-align: center;
            box-shadow: 0 8px 32px rgba(0,0,0,0.3);
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
            background: linear-gradient(45deg, #ff6b6b, #4ecdc4);
            background-clip: text;
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
        }
        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .stat-card {
            background: linear-gradient(135deg, #2c2c2c 0%, #3c3c3c 100%);
            padding: 25px;
            border-radius: 15px;
            text-align: center;
            box-shadow: 0 8px 32px rgba(0,0,0,0.3);
            transition: transform 0.3s ease;
        }
        .stat-card:hover {
            transform: translateY(-5px);
        }
        .stat-card h2 {
            font-size: 3em;
            margin: 10px 0;
            text-shadow: 0 0 20px rgba(255,255,255,0.1);
        }
        .charts-section {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 20px;
            margin-bottom: 30px;
        }
        .chart-container {
            background: linear-gradient(135deg, #2c2c2c 0%, #3c3c3c 100%);
            padding: 25px;
            border-radius: 15px;
            box-shadow: 0 8px 32px rgba(0,0,0,0.3);
            height: 400px;
        }
        .filters-section {
            background: linear-gradient(135deg, #2c2c2c 0%, #3c3c3c 100%);
            padding: 20px;
            border-radius: 15px;
            margin-bottom: 20px;
            box-shadow: 0 8px 32px rgba(0,0,0,0.3);
        }
        .filters-section h3 {
            margin-top: 0;
        }
        .filter-row {
            display: flex;
            gap: 15px;
            align-items: center;
            flex-wrap: wrap;
        }
        .filter-group {
            display: flex;
            flex-direction: column;
            gap: 5px;
        }
        .filter-group label {
            font-size: 14px;
            color: #ccc;
        }
        select, input[type="text"] {
            padding: 8px 12px;
            border: 1px solid #555;
            border-radius: 8px;
            background: #1a1a1a;
            color: white;
            font-size: 14px;
        }
        .btn {
            padding: 10px 20px;
            border: none;
            border-radius: 8px;
            cursor: pointer;
            font-weight: bold;
            transition: all 0.3s ease;
            text-decoration: none;
            display: inline-block;
        }
        .btn-primary {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }
        .btn-success {
            background: linear-gradient(135deg, #1dd1a1 0%, #10ac84 100%);
            color: white;
        }
        .btn-warning {
            background: linear-gradient(135deg, #feca57 0%, #ff9ff3 100%);
            color: white;
        }
        .btn-danger {
            background: linear-gradient(135deg, #ff6b6b 0%, #ee5a24 100%);
            color: white;
        }
        .btn:hover {
            transform: scale(1.05);
            box-shadow: 0 5px 15px rgba(0,0,0,0.3);
        }
        .action-buttons {
            position: fixed;
            top: 20px;
            right: 20px;
            display: flex;
            flex-direction: column;
            gap: 10px;
            z-index: 1000;
        }
        .content-grid {
            display: grid;
            grid-template-columns: 2fr 1fr;
            gap: 20px;
        }
        .events-table, .alerts-table {
            background: linear-gradient(135deg, #2c2c2c 0%, #3c3c3c 100%);
            padding: 25px;
            border-radius: 15px;
            box-shadow: 0 8px 32px rgba(0,0,0,0.3);
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th, td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid #444;
        }
        th {
            background: linear-gradient(135deg, #3c3c3c 0%, #4c4c4c 100%);
            font-weight: 600;
            position: sticky;
            top: 0;
        }
        .severity-high { color: #ff6b6b; font-weight: bold; }
        .severity-medium { color: #feca57; font-weight: bold; }
        .severity-critical { color: #ff3838; font-weight: bold; text-shadow: 0 0 10px rgba(255,56,56,0.5); }
        .severity-low { color: #48dbfb; }
        .status-open { color: #ff6b6b; }
        .status-investigating { color: #feca57; }
        .status-resolved { color: #1dd1a1; }
        @media (max-width: 768px) {
            .content-grid, .charts-section {
                grid-template-columns: 1fr;
            }
            .stats {
                grid-template-columns: repeat(2, 1fr);
            }
            .filter-row {
                flex-direction: column;
                align-items: stretch;
            }
            .action-buttons {
                position: relative;
                top: auto;
                right: auto;
                flex-direction: row;
                margin-bottom: 20px;
            }
        }
    </style>
    <script>
        let refreshInterval;
        function startAutoRefresh() {
            refreshInterval = setInterval(function(){
                location.reload();
            }, 30000);
        }

        function refreshNow() {
            location.reload();
        }

        function addTestEvent() {
            fetch('/add_test_event', {method: 'POST'})
            .then(() => location.reload());
        }

        function applyFilters() {
            const severity = document.getElementById('severityFilter').value;
            const eventType = document.getElementById('eventTypeFilter').value;
            const search = document.getElementById('searchInput').value;

            let url = '/?';
            if (severity) url += 'severity=' + encodeURIComponent(severity) + '&';
            if (eventType) url += 'event_type=' + encodeURIComponent(eventType) + '&';
            if (search) url += 'search=' + encodeURIComponent(search) + '&';

            window.location.href = url;
        }

        function clearFilters() {
            window.location.href = '/';
        }
    </script>
</head>
<body onload="startAutoRefresh()">
    <div class="action-buttons">
        <button class="btn btn-primary" onclick="refreshNow()">🔄 Refresh</button>
        <button class="btn btn-success" onclick="addTestEvent()">+ Add Test Event</button>
        <a href="/export/excel" class="btn btn-warning">📊 Export Excel</a>
        <a href="/export/pdf" class="btn btn-danger">📋 Export PDF</a>
    </div>

    <div class="header">
        <h1>🛡️ Ultimate SIEM Security Dashboard</h1>
        <p>Advanced Security Event Monitoring &amp; Threat Detection</p>
        <p style="font-size: 14px; opacity: 0.7;">Last updated: {{.LastUpdated}}</p>
    </div>

    <div class="stats">
        <div class="stat-card">
            <h3>📊 Total Events</h3>
            <h2>{{.Stats.TotalEvents}}</h2>
        </div>
        <div class="stat-card">
            <h3>⚠️ High Severity</h3>
            <h2 style="color: #ff6b6b;">{{.Stats.HighSeverity}}</h2>
        </div>
        <div class="stat-card">
            <h3>🚨 Critical Events</h3>
            <h2 style="color: #ff3838;">{{.Stats.CriticalSeverity}}</h2>
        </div>
        <div class="stat-card">
            <h3>🔔 Active Alerts</h3>
            <h2 style="color: #feca57;">{{.Stats.ActiveAlerts}}</h2>
        </div>
    </div>

    <div class="charts-section">
        <div class="chart-container">
            <h3>📈 Events by Severity</h3>
            <canvas id="severityChart"></canvas>
        </div>
        <div class="chart-container">
            <h3>📅 Events Over Time (last 7 days)</h3>
            <canvas id="timeChart"></canvas>
        </div>
    </div>

    <div class="filters-section">
        <h3>🔍 Search &amp; Filter Events</h3>
        <div class="filter-row">
            <div class="filter-group">
                <label>Severity:</label>
                <select id="severityFilter">
                    <option value="">All Severities</option>
                    {{range .SeverityOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}
                </select>
            </div>
            <div class="filter-group">
                <label>Event Type:</label>
                <select id="eventTypeFilter">
                    <option value="">All Types</option>
                    {{range .EventTypeOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}
                </select>
            </div>
            <div class="filter-group">
                <label>Search:</label>
                <input type="text" id="searchInput" placeholder="Search in messages..." value="{{.SearchQuery}}">
            </div>
            <div class="filter-group" style="justify-content: flex-end; margin-top: 20px;">
                <button class="btn btn-primary" onclick="applyFilters()">Apply Filters</button>
                <button class="btn btn-secondary" onclick="clearFilters()">Clear</button>
            </div>
        </div>
    </div>

    <div class="content-grid">
        <div class="events-table">
            <h3>🔍 Security Events ({{.EventCount}} found)</h3>
            <table id="eventsTable">
                <thead>
                    <tr>
                        <th>⏰ Time</th>
                        <th>🎯 Event Type</th>
                        <th>🌐 Source IP</th>
                        <th>⚡ Severity</th>
                        <th>💬 Message</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .EventRows}}
                    <tr>
                        <td>{{.Timestamp}}</td>
                        <td>{{.EventType}}</td>
                        <td>{{.SourceIP}}</td>
                        <td><span class="{{.SeverityClass}}">{{.Severity}}</span></td>
                        <td title="{{.FullMessage}}">{{.Message}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>

        <div class="alerts-table">
            <h3>🚨 Active Alerts</h3>
            <table>
                <thead>
                    <tr>
                        <th>Time</th>
                        <th>Type</th>
                        <th>Severity</th>
                        <th>Status</th>
                        <th>Title</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .AlertRows}}
                    <tr>
                        <td>{{.Timestamp}}</td>
                        <td>{{.AlertType}}</td>
                        <td><span class="{{.SeverityClass}}">{{.Severity}}</span></td>
                        <td><span class="{{.StatusClass}}">{{.Status}}</span></td>
                        <td>{{.Title}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
    </div>

    <script>
        const ctx1 = document.getElementById('severityChart').getContext('2d');
        new Chart(ctx1, {
            type: 'doughnut',
            data: {
                labels: {{.SeverityLabels}},
                datasets: [{
                    data: {{.SeverityCounts}},
                    backgroundColor: ['#48dbfb', '#feca57', '#ff6b6b', '#ff3838']
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: {
                    legend: {
                        labels: { color: 'white' }
                    }
                }
            }
        });

        const ctx2 = document.getElementById('timeChart').getContext('2d');
        new Chart(ctx2, {
            type: 'line',
            data: {
                labels: {{.TimeLabels}},
                datasets: [{
                    label: 'Events',
                    data: {{.TimeCounts}},
                    borderColor: '#4ecdc4',
                    backgroundColor: 'rgba(78, 205, 196, 0.1)',
                    fill: true
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                scales: {
                    y: {
                        ticks: { color: 'white' }
                    },
                    x: {
                        ticks: { color: 'white' }
                    }
                },
                plugins: {
                    legend: {
                        labels: { color: 'white' }
                    }
                }
            }
        });

        console.log("🎉 Ultimate SIEM Dashboard Loaded!");
        console.log("📊 Stats:", {{.StatsJSON}});
        console.log("🔄 Auto-refresh: Every 30 seconds");
    </script>
</body>
</html>
`
